package handlers

type ListCommentParam struct {
	VideoId string `path:"videoId"`
	Page    int64  `query:"page"`
	Limit   int64  `query:"limit"`
}

type CreateCommentParam struct {
	VideoId string `path:"videoId"`
	Content string `json:"content" form:"content"`
}

type UpdateCommentParam struct {
	CommentId string `path:"commentId"`
	Content   string `json:"content" form:"content"`
}

type DeleteCommentParam struct {
	CommentId string `path:"commentId"`
}

type LikeParam struct {
	VideoId   string `path:"videoId"`
	CommentId string `path:"commentId"`
	TweetId   string `path:"tweetId"`
}

type CreateTweetParam struct {
	Content string `json:"content" form:"content"`
}

type UserTweetsParam struct {
	UserId string `path:"userId"`
}

type UpdateTweetParam struct {
	TweetId string `path:"tweetId"`
	Content string `json:"content" form:"content"`
}

type DeleteTweetParam struct {
	TweetId string `path:"tweetId"`
}
