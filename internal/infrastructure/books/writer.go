package books

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Codificaciones de archivo aceptadas por el validador PLE.
const (
	EncodingISO88591 = "ISO-8859-1"
	EncodingUTF8     = "UTF-8"
)

// lineTerminator fin de línea de los archivos PLE.
const lineTerminator = "\r\n"

// Encode escribe las líneas terminadas en CRLF con la codificación indicada y devuelve los bytes
// de texto escritos. En ISO-8859-1 los caracteres sin representación se reemplazan por "?".
func (b *Book) Encode(w io.Writer, enc string) (int64, error) {
	var out io.Writer = w
	var tw *transform.Writer
	latin1 := false
	switch strings.ToUpper(strings.TrimSpace(enc)) {
	case "", EncodingISO88591, "ISO8859-1", "LATIN1":
		tw = transform.NewWriter(w, charmap.ISO8859_1.NewEncoder())
		out = tw
		latin1 = true
	case EncodingUTF8:
	default:
		return 0, fmt.Errorf("ple: codificación no soportada %q", enc)
	}

	var written int64
	for _, line := range b.Lines {
		if latin1 {
			line = toLatin1Range(line)
		}
		n, err := io.WriteString(out, line+lineTerminator)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("ple: escribir línea: %w", err)
		}
	}
	if tw != nil {
		if err := tw.Close(); err != nil {
			return written, fmt.Errorf("ple: cerrar codificador: %w", err)
		}
	}
	return written, nil
}

// Bytes contenido completo del archivo en la codificación indicada.
func (b *Book) Bytes(enc string) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := b.Encode(&buf, enc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ZipName nombre del comprimido: el del archivo con extensión .zip.
func (b *Book) ZipName() string {
	return strings.TrimSuffix(b.FileName, ".txt") + ".zip"
}

// Zip empaqueta el archivo del libro en un ZIP en memoria con una única entrada.
func (b *Book) Zip(enc string) ([]byte, error) {
	content, err := b.Bytes(enc)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	fw, err := zw.Create(b.FileName)
	if err != nil {
		return nil, fmt.Errorf("zip: crear entrada %s: %w", b.FileName, err)
	}
	if _, err := fw.Write(content); err != nil {
		return nil, fmt.Errorf("zip: escribir libro: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: cerrar archivo: %w", err)
	}
	return buf.Bytes(), nil
}

func toLatin1Range(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0xFF {
			return '?'
		}
		return r
	}, s)
}
