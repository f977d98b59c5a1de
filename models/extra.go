package models

import (
	"encoding/json"
	"strings"
)

// withExtra marshals known and then adds every extra key the struct does not
// already define. Documents keep caller supplied fields on the way out.
func withExtra(known interface{}, extra map[string]interface{}) ([]byte, error) {
	b, err := json.Marshal(known)
	if err != nil || len(extra) == 0 {
		return b, err
	}
	var merged map[string]interface{}
	if err := json.Unmarshal(b, &merged); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// SplitExtra moves every key of doc that is not a json field of the known set
// into a separate map. Used when binding loosely shaped request bodies.
func SplitExtra(doc map[string]interface{}, known ...string) map[string]interface{} {
	skip := make(map[string]bool, len(known)+1)
	skip["_id"] = true
	for _, k := range known {
		skip[k] = true
	}
	extra := map[string]interface{}{}
	for k, v := range doc {
		if skip[k] || strings.HasPrefix(k, "$") {
			continue
		}
		extra[k] = v
	}
	return extra
}

func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	return withExtra(plain(u), u.Profile)
}

func (c Category) MarshalJSON() ([]byte, error) {
	type plain Category
	return withExtra(plain(c), c.Extra)
}

func (m Medicine) MarshalJSON() ([]byte, error) {
	type plain Medicine
	return withExtra(plain(m), m.Extra)
}
