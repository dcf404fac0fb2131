package app

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/gin-gonic/gin"
	val "github.com/go-playground/validator/v10"
)

type ValidError struct {
	Key     string
	Message string
}

type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

// BindAndValid binds the request and translates validation failures.
// BindAndValid 绑定请求参数并翻译校验失败信息。
func BindAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	var errs ValidErrors
	err := c.ShouldBind(v)
	if err != nil {
		verrs, ok := err.(val.ValidationErrors)
		if !ok {
			// JSON 语法错误等非校验类失败
			errs = append(errs, &ValidError{
				Key:     "body",
				Message: err.Error(),
			})
			return false, errs
		}

		trans := translatorFromContext(c)
		if trans == nil {
			for _, fe := range verrs {
				errs = append(errs, &ValidError{
					Key:     fe.Field(),
					Message: fe.Error(),
				})
			}
			return false, errs
		}
		for key, value := range verrs.Translate(trans) {
			errs = append(errs, &ValidError{
				Key:     key,
				Message: value,
			})
		}
		return false, errs
	}

	return true, nil
}

func translatorFromContext(c *gin.Context) ut.Translator {
	if v, ok := c.Get("trans"); ok {
		if trans, ok := v.(ut.Translator); ok {
			return trans
		}
	}
	return nil
}
