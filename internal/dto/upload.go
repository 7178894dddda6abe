package dto

// UploadAvatarResponse represents the result of a successful avatar upload
type UploadAvatarResponse struct {
	URL string `json:"url"`
}
