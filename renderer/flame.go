package renderer

import (
	"fmt"
	"log"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/goflame/effect"
	"github.com/richinsley/goflame/scene"
	"github.com/richinsley/goflame/shader"
	xlate "github.com/richinsley/goflame/translator"
)

// FlamePass draws one effect instance: its quad through the translated
// flame program with the instance's uniform set.
type FlamePass struct {
	ShaderProgram uint32
	quadVAO       uint32
	quadVBO       uint32
	projectionLoc int32
	modelViewLoc  int32
	uniformLocs   map[string]int32
}

func NewFlamePass() (*FlamePass, error) {
	vs, err := xlate.Translate(shader.FlameVertexShader(), "vertex")
	if err != nil {
		return nil, err
	}
	fs, err := xlate.Translate(shader.FlameFragmentShader(), "fragment")
	if err != nil {
		return nil, err
	}

	p := &FlamePass{
		uniformLocs: make(map[string]int32, len(effect.UniformNames)),
	}
	p.ShaderProgram, err = newProgram(vs.Code, fs.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to create flame program: %w", err)
	}

	gl.UseProgram(p.ShaderProgram)
	p.projectionLoc = uniformLocation(p.ShaderProgram, vs.MappedName(shader.UniformProjection))
	p.modelViewLoc = uniformLocation(p.ShaderProgram, vs.MappedName(shader.UniformModelView))
	for _, name := range effect.UniformNames {
		loc := uniformLocation(p.ShaderProgram, fs.MappedName(name))
		if loc < 0 {
			log.Printf("Warning: flame uniform %q is not active", name)
		}
		p.uniformLocs[name] = loc
	}

	var stride int32 = effect.QuadStride * 4
	gl.GenVertexArrays(1, &p.quadVAO)
	gl.GenBuffers(1, &p.quadVBO)
	gl.BindVertexArray(p.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(effect.QuadVertices)*4, gl.Ptr(effect.QuadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(shader.AttribPosition)
	gl.VertexAttribPointer(shader.AttribPosition, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(shader.AttribUV)
	gl.VertexAttribPointer(shader.AttribUV, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return p, nil
}

// Draw renders the view into the currently bound framebuffer and viewport.
func (p *FlamePass) Draw(v *scene.View) {
	u := v.Instance.Uniforms()
	projection := v.Camera.Projection(v.Viewport.Aspect())
	modelView := v.Camera.View().Mul4(v.Instance.Model())

	gl.UseProgram(p.ShaderProgram)
	p.updateUniforms(u, projection, modelView)

	gl.BindVertexArray(p.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(effect.QuadVertices)/effect.QuadStride))
	gl.BindVertexArray(0)
}

func (p *FlamePass) updateUniforms(u effect.Uniforms, projection, modelView mgl32.Mat4) {
	if p.projectionLoc != -1 {
		gl.UniformMatrix4fv(p.projectionLoc, 1, false, &projection[0])
	}
	if p.modelViewLoc != -1 {
		gl.UniformMatrix4fv(p.modelViewLoc, 1, false, &modelView[0])
	}
	if loc := p.uniformLocs[effect.UniformTime]; loc != -1 {
		gl.Uniform1f(loc, u.Time)
	}
	if loc := p.uniformLocs[effect.UniformAmount]; loc != -1 {
		gl.Uniform1f(loc, u.Amount)
	}
	if loc := p.uniformLocs[effect.UniformTextureDetails]; loc != -1 {
		gl.Uniform4fv(loc, 1, &u.TextureDetails[0])
	}
	if loc := p.uniformLocs[effect.UniformImageDetails]; loc != -1 {
		gl.Uniform2fv(loc, 1, &u.ImageDetails[0])
	}
	if loc := p.uniformLocs[effect.UniformColour1]; loc != -1 {
		gl.Uniform4fv(loc, 1, &u.Colour1[0])
	}
	if loc := p.uniformLocs[effect.UniformColour2]; loc != -1 {
		gl.Uniform4fv(loc, 1, &u.Colour2[0])
	}
	if loc := p.uniformLocs[effect.UniformID]; loc != -1 {
		gl.Uniform1f(loc, u.ID)
	}
}

func (p *FlamePass) Destroy() {
	gl.DeleteProgram(p.ShaderProgram)
	gl.DeleteBuffers(1, &p.quadVBO)
	gl.DeleteVertexArrays(1, &p.quadVAO)
}
