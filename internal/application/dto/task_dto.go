package dto

// TaskRequest alta y actualización de tarea; deadline en dd/MM/yyyy HH:mm.
type TaskRequest struct {
	Title       string `json:"title" validate:"notblank,max=200"`
	Description string `json:"description" validate:"notblank"`
	Deadline    string `json:"deadline" validate:"notblank"`
}

// TaskResponse salida de una tarea con sus comentarios (más recientes primero).
type TaskResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Deadline    string            `json:"deadline"`
	Expired     bool              `json:"expired"`
	Comments    []CommentResponse `json:"comments"`
}

// CommentRequest contenido de un comentario.
type CommentRequest struct {
	Content string `json:"content" validate:"notblank,max=2000"`
}

// CommentResponse salida de un comentario.
type CommentResponse struct {
	ID            string `json:"id"`
	TaskID        string `json:"task_id"`
	Content       string `json:"content"`
	PostedAt      string `json:"posted_at"`
	OwnerUsername string `json:"owner_username"`
}
