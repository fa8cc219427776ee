package handlers

type ListVideoParam struct {
	Page     int64  `query:"page"`
	Limit    int64  `query:"limit"`
	Query    string `query:"query"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
	UserId   string `query:"userId"`
}

type VideoIdParam struct {
	VideoId string `path:"videoId"`
}

type CreatePlaylistParam struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

type PlaylistIdParam struct {
	PlaylistId string `path:"playlistId"`
}

type UpdatePlaylistParam struct {
	PlaylistId  string `path:"playlistId"`
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

type PlaylistVideoParam struct {
	VideoId    string `path:"videoId"`
	PlaylistId string `path:"playlistId"`
}

type UserPlaylistParam struct {
	UserId string `path:"userId"`
}
