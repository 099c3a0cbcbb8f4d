package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"UGEM_BACK-END/internal/models"
)

// Validator wraps go-playground/validator and translates failures into the
// Arabic field messages shown to members.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their json tag name
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates a request payload. The first failing rule is returned as
// a models.ValidationError carrying the localized message.
func (v *Validator) Struct(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return models.ErrInvalidInput
	}

	fe := validationErrors[0]
	return &models.ValidationError{
		Field:   fe.Field(),
		Message: messageFor(fe.Field(), fe.Tag()),
	}
}

// messageFor returns the Arabic message for a field/rule pair. The texts
// match the client-side schemas so both layers speak with one voice.
func messageFor(field, tag string) string {
	if byTag, ok := fieldMessages[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
		if msg, ok := byTag["*"]; ok {
			return msg
		}
	}
	return "قيمة غير صالحة"
}

var fieldMessages = map[string]map[string]string{
	"first_name": {
		"required": "الاسم الأول مطلوب",
		"min":      "يجب أن يتكون الاسم الأول من حرفين على الأقل",
	},
	"last_name": {
		"required": "اسم العائلة مطلوب",
		"min":      "يجب أن يتكون اسم العائلة من حرفين على الأقل",
	},
	"email": {
		"required": "البريد الإلكتروني مطلوب",
		"email":    "يرجى إدخال عنوان بريد إلكتروني صحيح",
	},
	"password": {
		"required": "كلمة المرور مطلوبة",
		"min":      "يجب أن تتكون كلمة المرور من 6 أحرف على الأقل",
	},
	"new_password": {
		"required": "كلمة المرور مطلوبة",
		"min":      "يجب أن تتكون كلمة المرور من 6 أحرف على الأقل",
	},
	"full_name": {
		"required": "الاسم الكامل مطلوب",
		"min":      "يجب أن يتكون الاسم الكامل من 3 أحرف على الأقل",
	},
	"phone": {
		"required": "رقم الهاتف مطلوب",
		"*":        "يجب أن يتكون رقم الهاتف من 8 أرقام",
	},
	"specialty": {
		"required": "التخصص مطلوب",
		"min":      "يجب أن يتكون التخصص من حرفين على الأقل",
	},
	"faculty": {
		"required": "الكلية مطلوبة",
		"min":      "يجب أن يتكون اسم الكلية من حرفين على الأقل",
	},
	"address": {
		"required": "عنوان السكن مطلوب",
		"min":      "يجب أن يتكون العنوان من 3 أحرف على الأقل",
	},
	"code": {
		"*": "رمز التحقق غير صالح",
	},
	"reset_token": {
		"*": "رمز إعادة التعيين غير صالح",
	},
}
