package controllers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"pharma-place/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var medicineFields = []string{
	"name", "genericName", "category", "company", "image",
	"price", "addedBy", "discount", "sliderStatus",
}

func (h *Handler) ListMedicines(c *gin.Context) {
	medicines, err := h.Medicines.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, medicines)
}

func (h *Handler) CreateMedicine(c *gin.Context) {
	var medicine models.Medicine
	var raw map[string]interface{}
	if err := c.ShouldBindBodyWith(&medicine, binding.JSON); err != nil {
		badRequest(c, "invalid medicine")
		return
	}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		badRequest(c, "invalid medicine")
		return
	}
	if strings.TrimSpace(medicine.Name) == "" || medicine.AddedBy == "" {
		badRequest(c, "name and addedBy are required")
		return
	}
	if medicine.Price < 0 {
		badRequest(c, "price must not be negative")
		return
	}
	// slider placement only changes through the advertisement workflow
	medicine.SliderStatus = models.SliderUnset
	medicine.Extra = models.SplitExtra(raw, medicineFields...)

	res, err := h.Medicines.Create(c.Request.Context(), medicine)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) ListMedicinesByOwner(c *gin.Context) {
	medicines, err := h.Medicines.ListByOwner(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, medicines)
}

func (h *Handler) ListSliderMedicines(c *gin.Context) {
	medicines, err := h.Medicines.ListSlider(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, medicines)
}

func (h *Handler) ListDiscountedMedicines(c *gin.Context) {
	medicines, err := h.Medicines.ListDiscounted(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if len(medicines) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "no discounted medicines found", "data": []models.Medicine{}})
		return
	}
	c.JSON(http.StatusOK, medicines)
}

// UploadMedicineImage stores a multipart "image" file and returns its URL.
func (h *Handler) UploadMedicineImage(c *gin.Context) {
	if h.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		badRequest(c, "image file is required")
		return
	}
	file, err := header.Open()
	if err != nil {
		badRequest(c, "cannot read image")
		return
	}
	defer file.Close()

	body, contentType, err := sniffImage(file)
	if err != nil {
		badRequest(c, "file must be an image")
		return
	}

	url, err := h.Uploader.Upload(c.Request.Context(), body, contentType, "medicines")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

var errNotImage = errors.New("not an image")

// sniffImage detects the content type from the file bytes. The part header is
// client controlled and is ignored. The returned reader yields the whole file.
func sniffImage(r io.Reader) (io.Reader, string, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, "", err
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", errNotImage
	}
	return io.MultiReader(bytes.NewReader(head), r), contentType, nil
}
