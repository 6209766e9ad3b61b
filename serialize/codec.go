package serialize

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// marshalYAML encodes v with a two-space indent, mirroring the teacher's
// yaml.Marshaller.Marshal (encoder.SetIndent(2)).
func marshalYAML(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		_ = enc.Close()

		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// unmarshalYAML decodes data into dst, mirroring the teacher's
// yaml.Unmarshaller.Unmarshal (yaml.NewDecoder(r).Decode(dst)).
func unmarshalYAML(data []byte, dst interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	return dec.Decode(dst)
}
