package request

// MovieRequest is the generic create/replace payload. Image data is never
// accepted here; posters go through the dedicated upload endpoint.
type MovieRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Description string   `json:"description" validate:"required"`
	Duration    int      `json:"duration" validate:"required,gt=0"`
	GenreIDs    []string `json:"genres,omitempty" validate:"dive,uuid4"`
	ActorIDs    []string `json:"actors,omitempty" validate:"dive,uuid4"`
}

type MovieUpdateRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty"`
	Duration    *int     `json:"duration,omitempty" validate:"omitempty,gt=0"`
	GenreIDs    []string `json:"genres,omitempty" validate:"omitempty,dive,uuid4"`
	ActorIDs    []string `json:"actors,omitempty" validate:"omitempty,dive,uuid4"`
}
