package upstream

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
)

// FileUpload is a file bound to one multipart field.
type FileUpload struct {
	Filename string
	Content  io.Reader
}

type formField struct {
	name  string
	value string
}

type formFile struct {
	field  string
	upload FileUpload
}

// Form collects multipart fields and files before encoding.
type Form struct {
	fields []formField
	files  []formFile
}

// Set adds a plain text field.
func (f *Form) Set(name, value string) {
	f.fields = append(f.fields, formField{name: name, value: value})
}

// SetJSON adds a field holding the JSON encoding of v.
func (f *Form) SetJSON(name string, v any) error {
	buf, err := json.Marshal(v)
	if err != nil {
		return err
	}
	f.Set(name, string(buf))
	return nil
}

// AddFile binds a file to a multipart field.
func (f *Form) AddFile(field string, upload FileUpload) {
	f.files = append(f.files, formFile{field: field, upload: upload})
}

func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, field := range f.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", err
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.upload.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, file.upload.Content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
