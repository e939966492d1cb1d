package utils

import (
	jsoniter "github.com/json-iterator/go"
)

// json segue a biblioteca padrão, exceto pelo escape de HTML: o documento exportado
// mantém "&", "<" e ">" legíveis
var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

const indent = "  "

// PrettyJSON serializa in com indentação de dois espaços, preservando a ordem dos campos
func PrettyJSON(in any) ([]byte, error) {
	return json.MarshalIndent(in, "", indent)
}
