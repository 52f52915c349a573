package apperror

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init points gin's binding validator at json field names so validation
// details name the fields the client actually sent.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerJSONNames(v)
	}
}

func registerJSONNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}
