package tmdb

// apiSearchResponse is the TMDB /search/movie envelope.
type apiSearchResponse struct {
	Results []apiMovie `json:"results"`
}

// apiMovie represents a single TMDB search result.
type apiMovie struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"`
	GenreIDs      []int64 `json:"genre_ids"`
}

// genreNames maps the stable TMDB movie genre IDs to display names.
var genreNames = map[int64]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Science Fiction",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}
