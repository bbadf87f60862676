package notification

type RegisterDeviceRequest struct {
	Token    string   `json:"token"`
	Platform Platform `json:"platform"`
}
