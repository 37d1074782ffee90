package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonaRender_FillsPlaceholders(t *testing.T) {
	p := Persona{
		Name:     "test",
		Version:  1,
		Template: "Konteks:\n{context}\n\nPertanyaan: {question}\n\nJawaban:",
	}

	got := p.Render("INFO", "apa itu pneumonia?")

	assert.Equal(t, "Konteks:\nINFO\n\nPertanyaan: apa itu pneumonia?\n\nJawaban:", got)
	assert.NotContains(t, got, "{context}")
	assert.NotContains(t, got, "{question}")
}

func TestAssistantPersona_Template(t *testing.T) {
	assert.Contains(t, AssistantPersona.Template, "{context}")
	assert.Contains(t, AssistantPersona.Template, "{question}")
	assert.True(t, strings.HasSuffix(AssistantPersona.Template, "Jawaban Asisten DetakMedis:"))

	rendered := AssistantPersona.Render("KONTEKS-X", "TANYA-Y")
	assert.Contains(t, rendered, "KONTEKS-X")
	assert.Contains(t, rendered, "TANYA-Y")
}

func TestVirtualDoctorPersona_Template(t *testing.T) {
	assert.Contains(t, VirtualDoctorPersona.Template, "{context}")
	assert.Contains(t, VirtualDoctorPersona.Template, "{question}")
	assert.True(t, strings.HasSuffix(VirtualDoctorPersona.Template, "Jawaban Dokter Virtual DetakMedis:"))
}
