package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// 字段错误使用 json/form 标签名，与请求体保持一致
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
	}
}

// WriteBindError 将绑定/校验错误转换为 400，并尽量给出字段级错误。
func WriteBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "参数错误",
		"fields": FieldErrors(err),
	})
}

// FieldErrors 把 validator 的错误展开为 字段名 -> 提示 的映射。
func FieldErrors(err error) map[string]string {
	fields := map[string]string{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[jsonFieldName(fe)] = fieldMessage(fe)
		}
		return fields
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		fields[typeErr.Field] = fmt.Sprintf("类型错误，期望 %s", typeErr.Type.String())
		return fields
	}

	fields["non_field_errors"] = err.Error()
	return fields
}

func jsonFieldName(fe validator.FieldError) string {
	if name := fe.Field(); name != "" {
		return name
	}
	return fe.StructField()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "该字段是必填项"
	case "min":
		return "不能小于 " + fe.Param()
	case "max":
		return "不能大于 " + fe.Param()
	case "gt":
		return "必须大于 " + fe.Param()
	case "gte":
		return "必须大于或等于 " + fe.Param()
	case "oneof":
		return "必须是以下值之一: " + fe.Param()
	case "email":
		return "邮箱格式不正确"
	case "latitude":
		return "纬度格式不正确"
	case "longitude":
		return "经度格式不正确"
	default:
		return "校验失败: " + fe.Tag()
	}
}

// ParseIDParam 解析路径中的正整数 ID，失败时直接写 400。
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " 参数错误"})
		return 0, false
	}
	return uint(id), true
}
