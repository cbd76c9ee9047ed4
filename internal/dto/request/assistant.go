package request

type RewriteBioRequest struct {
	Text     string `json:"text" validate:"required,max=2000"`
	Category string `json:"category" validate:"omitempty,service_category"`
}
