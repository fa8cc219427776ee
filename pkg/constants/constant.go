package constants

const (
	ServiceName = "vidtube-api"

	// IdentityKey names both the JWT claim and the request context key holding the requester id.
	IdentityKey = "user_id"

	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// LikeToggleAttempts bounds re-evaluation after losing an insert race.
	LikeToggleAttempts = 3

	VideoFileField     = "videoFile"
	ThumbnailFileField = "thumbnail"

	VideoBucket = "video"
	ImageBucket = "picture"
)

// Like target kinds.
const (
	LikeKindVideo   = "video"
	LikeKindComment = "comment"
	LikeKindTweet   = "tweet"
)

// Video listing sort keys accepted on the query string, mapped to columns.
var VideoSortColumns = map[string]string{
	"createdAt": "created_at",
	"views":     "views",
	"duration":  "duration",
	"title":     "title",
}
