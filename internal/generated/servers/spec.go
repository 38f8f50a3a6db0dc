package servers

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var rawSpec []byte

// RawSpec returns the embedded OpenAPI document as YAML.
func RawSpec() []byte {
	return append([]byte(nil), rawSpec...)
}

// GetSwagger returns the validated OpenAPI document. Each call parses a
// fresh copy, so callers may mutate the result.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("loading openapi document: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validating openapi document: %w", err)
	}
	return doc, nil
}

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterSwaggerDoc publishes the document in the swag registry under
// swag.Name so that echo-swagger can serve it as doc.json.
func RegisterSwaggerDoc() error {
	registerOnce.Do(func() {
		doc, err := GetSwagger()
		if err != nil {
			registerErr = err
			return
		}
		payload, err := json.Marshal(doc)
		if err != nil {
			registerErr = fmt.Errorf("encoding openapi document: %w", err)
			return
		}
		swag.Register(swag.Name, swaggerDoc{json: string(payload)})
	})
	return registerErr
}
