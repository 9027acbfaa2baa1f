package dto

type UploadResponse struct {
	ImageURL string `json:"image_url"`
	ImageID  string `json:"image_id"`
	FileSize int64  `json:"file_size"`
	FileName string `json:"file_name"`
}
