package httpapi

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// NewTopicForm فیلدهای فرم ساخت تاپیک؛ حداکثرها با topic.MaxSubjectLength و post.MaxMessageLength یکی هستند
type NewTopicForm struct {
	Subject string `form:"subject" binding:"required,max=255"`
	Message string `form:"message" binding:"required,max=4000"`
}

// Validate فیلدها را trim کرده و خطای هر فیلد را برمی‌گرداند؛ nil یعنی فرم معتبر است
func (f *NewTopicForm) Validate() map[string]string {
	f.Subject = strings.TrimSpace(f.Subject)
	f.Message = strings.TrimSpace(f.Message)

	err := binding.Validator.ValidateStruct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": err.Error()}
	}
	fieldErrors := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fieldErrors[strings.ToLower(fe.Field())] = fieldErrorMessage(fe)
	}
	return fieldErrors
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		s, _ := fe.Value().(string)
		return fmt.Sprintf("Ensure this value has at most %s characters (it has %d).", fe.Param(), utf8.RuneCountInString(s))
	default:
		return "Enter a valid value."
	}
}
