package router

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"

	health "vidtube.com/cmd/api/handlers/health"
	interaction "vidtube.com/cmd/api/handlers/interaction"
	video "vidtube.com/cmd/api/handlers/video"
	"vidtube.com/pkg/middleware"
)

// APIResource is the sentinel resource guarding /api/v1.
const APIResource = "vidtube-api-v1"

// Register mounts every route. auth guards everything except the health check.
func Register(r *server.Hertz, auth ...app.HandlerFunc) {
	v1 := r.Group("/api/v1", middleware.FlowControl(APIResource))
	v1.GET("/healthcheck", health.HealthCheck)

	api := v1.Group("", auth...)

	comments := api.Group("/comments")
	comments.GET("/:videoId", interaction.ListComment)
	comments.POST("/:videoId", interaction.CreateComment)
	comments.PATCH("/c/:commentId", interaction.UpdateComment)
	comments.DELETE("/c/:commentId", interaction.DeleteComment)

	likes := api.Group("/likes")
	likes.POST("/toggle/v/:videoId", interaction.ToggleVideoLike)
	likes.POST("/toggle/c/:commentId", interaction.ToggleCommentLike)
	likes.POST("/toggle/t/:tweetId", interaction.ToggleTweetLike)
	likes.GET("/videos", interaction.LikedVideos)

	playlist := api.Group("/playlist")
	playlist.POST("", video.CreatePlaylist)
	playlist.GET("/user/:userId", video.UserPlaylists)
	playlist.PATCH("/add/:videoId/:playlistId", video.AddVideoToPlaylist)
	playlist.PATCH("/remove/:videoId/:playlistId", video.RemoveVideoFromPlaylist)
	playlist.GET("/:playlistId", video.GetPlaylist)
	playlist.PATCH("/:playlistId", video.UpdatePlaylist)
	playlist.DELETE("/:playlistId", video.DeletePlaylist)

	tweets := api.Group("/tweets")
	tweets.POST("", interaction.CreateTweet)
	tweets.GET("/user/:userId", interaction.UserTweets)
	tweets.PATCH("/:tweetId", interaction.UpdateTweet)
	tweets.DELETE("/:tweetId", interaction.DeleteTweet)

	videos := api.Group("/videos")
	videos.GET("", video.ListVideos)
	videos.POST("", video.PublishVideo)
	videos.PATCH("/toggle/publish/:videoId", video.TogglePublish)
	videos.GET("/:videoId", video.GetVideo)
	videos.PATCH("/:videoId", video.UpdateVideo)
	videos.DELETE("/:videoId", video.DeleteVideo)
}
