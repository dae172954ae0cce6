package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/pt_BR" // ポルトガル語 (ブラジル) ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	pt_BR_translations "github.com/go-playground/validator/v10/translations/pt_BR"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"tenant_name":         "nome da empresa",
	"email":               "e-mail",
	"password":            "senha",
	"general":             "dados gerais",
	"name":                "nome",
	"birth_date":          "data de nascimento",
	"celular":             "celular",
	"observations":        "observações",
	"zip_code":            "CEP",
	"street":              "rua",
	"number":              "número",
	"complement":          "complemento",
	"neighborhood":        "bairro",
	"city":                "cidade",
	"state":               "estado",
	"brand":               "marca",
	"model":               "modelo",
	"plate":               "placa",
	"color":               "cor",
	"model_year":          "ano do modelo",
	"manufacture_year":    "ano de fabricação",
	"chassis":             "chassi",
	"registration_number": "renavam",
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	portuguese := pt_BR.New()
	uni := ut.New(portuguese, portuguese)
	var found bool
	Trans, found = uni.GetTranslator("pt_BR")
	if !found {
		log.Fatal("translator not found")
	}

	if err := pt_BR_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// フィールド名を翻訳してメッセージに埋め込む
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translateField(fe.Field()))
			return t
		})
	}

	registerTranslation("required", "O campo {0} é obrigatório.")
	registerTranslation("email", "O campo {0} deve ser um e-mail válido.")

	// min / max は文字列なら文字数、数値なら値の範囲として表示する
	registerLimitTranslation("min",
		"O campo {0} deve ter no mínimo {1} caracteres.",
		"O campo {0} deve ser no mínimo {1}.")
	registerLimitTranslation("max",
		"O campo {0} deve ter no máximo {1} caracteres.",
		"O campo {0} deve ser no máximo {1}.")
}

func registerLimitTranslation(tag, stringMsg, numberMsg string) {
	stringKey := tag + "-string"
	numberKey := tag + "-number"
	Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
		if err := ut.Add(stringKey, stringMsg, true); err != nil {
			return err
		}
		return ut.Add(numberKey, numberMsg, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		key := numberKey
		if fe.Kind() == reflect.String {
			key = stringKey
		}
		t, _ := ut.T(key, translateField(fe.Field()), fe.Param())
		return t
	})
}

func translateField(field string) string {
	if translated, ok := fieldNameTranslations[field]; ok {
		return translated
	}
	return field
}

// ValidateStruct は構造体を検証し、失敗時は翻訳済みの AppError を返します。
func ValidateStruct(s interface{}) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return NewValidationErrorResponse(validationErrors)
	}
	return err
}
