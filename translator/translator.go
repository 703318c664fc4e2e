package translator

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator     *gst.ShaderTranslator
	translatorErr  error
	translatorOnce sync.Once
)

func GetTranslator() (*gst.ShaderTranslator, error) {
	translatorOnce.Do(func() {
		translator, translatorErr = gst.NewShaderTranslator(context.Background())
	})
	return translator, translatorErr
}

// Shader is a translated stage along with the names the translator gave
// to the source's variables.
type Shader struct {
	Code  string
	Names map[string]string
}

// MappedName returns the name of a source variable in the translated code,
// or the source name when the translator left it untouched.
func (s *Shader) MappedName(name string) string {
	if mapped, ok := s.Names[name]; ok && mapped != "" {
		return mapped
	}
	return name
}

// Translate converts a WebGL2 (GLSL ES 3.00) stage to desktop GLSL 4.10.
// stage is "vertex" or "fragment".
func Translate(source, stage string) (*Shader, error) {
	t, err := GetTranslator()
	if err != nil {
		return nil, fmt.Errorf("failed to start shader translator: %w", err)
	}
	out, err := t.TranslateShader(source, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return nil, fmt.Errorf("%s shader translation failed: %w", stage, err)
	}

	s := &Shader{
		Code:  out.Code,
		Names: make(map[string]string, len(out.Variables)),
	}
	for name, v := range out.Variables {
		s.Names[name] = v.MappedName
	}
	return s, nil
}
