package response

import (
	"cinema-api/internal/data/entity"
)

// MovieListResponse is the compact list shape: genre and actor display
// names instead of nested objects.
type MovieListResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    int      `json:"duration"`
	Genres      []string `json:"genres"`
	Actors      []string `json:"actors"`
	Image       *string  `json:"image"`
}

// MovieDetailResponse nests the full related objects.
type MovieDetailResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Duration    int             `json:"duration"`
	Genres      []GenreResponse `json:"genres"`
	Actors      []ActorResponse `json:"actors"`
	Image       *string         `json:"image"`
}

// ImageURL maps a stored file name to its public /media/ path.
func ImageURL(image *string) *string {
	if image == nil || *image == "" {
		return nil
	}
	url := "/media/" + *image
	return &url
}

func MovieToListResponse(movie *entity.Movie, genres []*entity.Genre, actors []*entity.Actor) MovieListResponse {
	genreNames := make([]string, len(genres))
	for i, genre := range genres {
		genreNames[i] = genre.Name
	}

	actorNames := make([]string, len(actors))
	for i, actor := range actors {
		actorNames[i] = actor.FullName()
	}

	return MovieListResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Description: movie.Description,
		Duration:    movie.Duration,
		Genres:      genreNames,
		Actors:      actorNames,
		Image:       ImageURL(movie.Image),
	}
}

func MovieToDetailResponse(movie *entity.Movie, genres []*entity.Genre, actors []*entity.Actor) MovieDetailResponse {
	return MovieDetailResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Description: movie.Description,
		Duration:    movie.Duration,
		Genres:      GenresToResponse(genres),
		Actors:      ActorsToResponse(actors),
		Image:       ImageURL(movie.Image),
	}
}
