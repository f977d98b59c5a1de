package routes

import (
	"time"

	"pharma-place/controllers"
	"pharma-place/logger"
	"pharma-place/middleware"
	"pharma-place/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", logger.RequestIDHeader},
		ExposeHeaders: []string{logger.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func SetupRoutes(r *gin.Engine, h *controllers.Handler, access *middleware.Access, corsOrigins []string) {
	r.Use(cors.New(corsConfig(corsOrigins)))
	r.Use(logger.RequestID(), logger.RequestLogger())

	token := access.VerifyToken()
	admin := access.VerifyAdmin()
	tokenLimit := middleware.NewLimiter(rate.Every(time.Second), 10).RateLimit()
	intentLimit := middleware.NewLimiter(rate.Every(2*time.Second), 5).RateLimit()

	r.GET("/", controllers.Liveness)
	r.POST("/jwt", tokenLimit, h.IssueToken)

	// categories
	r.GET("/categories", h.ListCategories)
	r.GET("/category/:id", h.GetCategory)
	r.POST("/categories", h.CreateCategory)
	r.PUT("/categories/:id", h.UpdateCategory)
	r.DELETE("/categories/:id", h.DeleteCategory)

	// medicines
	r.GET("/medicines", h.ListMedicines)
	r.POST("/medicines", h.CreateMedicine)
	r.GET("/medicines/slider", h.ListSliderMedicines)
	r.GET("/medicines/discount", h.ListDiscountedMedicines)
	r.GET("/medicines/:email", h.ListMedicinesByOwner)
	if h.Uploader != nil {
		r.POST("/medicines/image", token, access.VerifyRole(models.RoleSeller, models.RoleAdmin), h.UploadMedicineImage)
	}

	// users
	r.GET("/users", token, admin, h.ListUsers)
	r.GET("/users/admin/:email", token, access.VerifySelf(middleware.PathParam("email")), h.UserRole)
	r.POST("/users", h.CreateUser)
	r.PATCH("/users/admin/:id", token, admin, h.MakeAdmin)
	r.PATCH("/users/seller/:id", token, admin, h.MakeSeller)
	r.PATCH("/user/:id", token, admin, h.ResetRole)
	r.DELETE("/user/:id", token, admin, h.DeleteUser)

	// carts
	r.GET("/carts", h.FindCartItem)
	r.GET("/cartItems", h.ListCartItems)
	r.POST("/carts", token, h.AddToCart)
	r.PATCH("/carts/:id", token, h.UpdateCartQuantity)
	r.DELETE("/carts/:id", token, h.DeleteCartItem)
	r.DELETE("/carts", token, access.VerifySelf(middleware.QueryParam("email")), h.ClearCart)

	// payments
	r.POST("/create-payment-intent", intentLimit, h.CreatePaymentIntent)
	r.POST("/payments", h.Checkout)
	r.GET("/payments", token, admin, h.ListPayments)
	r.GET("/payments/:email", token, access.VerifySelf(middleware.PathParam("email")), h.ListPaymentsByEmail)
	r.PATCH("/payments/:id", token, admin, h.PatchPayment)

	// reports
	r.GET("/admin-stats", token, admin, h.AdminStats)
	r.GET("/sales-report", token, admin, h.SalesReport)
	r.GET("/medicines-by-seller", token, h.SellerSales)

	// advertisement slider
	r.PATCH("/advertisement-request/:id", token, h.RequestAdvertisement)
	r.PATCH("/advertisement-status/:id", token, admin, h.SetAdvertisementStatus)
	r.GET("/adversitement-status/:email", h.ListMedicinesByOwner)
	r.GET("/advertisement-status/:email", h.ListMedicinesByOwner)
}
