package media

import "encoding/json"

// Image is one attachment on a transaction or item. Image lists are stored
// as jsonb documents, the image set always travels as a whole.
type Image struct {
	URL       string `json:"url"`
	Filename  string `json:"filename"`
	Size      int64  `json:"size"`
	MimeType  string `json:"mimeType"`
	IsPrimary bool   `json:"isPrimary"`
	Caption   string `json:"caption,omitempty"`
}

// Marshal encodes an image list for a jsonb column. A nil slice encodes as
// an empty array so the column never holds SQL NULL.
func Marshal(images []Image) ([]byte, error) {
	if images == nil {
		images = []Image{}
	}
	return json.Marshal(images)
}

// Unmarshal decodes a jsonb column value. Empty input decodes to nil.
func Unmarshal(data []byte) ([]Image, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var images []Image
	if err := json.Unmarshal(data, &images); err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, nil
	}
	return images, nil
}
