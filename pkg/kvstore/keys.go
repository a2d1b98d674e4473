package kvstore

import "fmt"

// Key builders for every namespace in the store. Index keys
// (user-email, username, article-slug) hold a bare id that points at the
// record under the primary namespace.

func UserKey(id string) string          { return "users:" + id }
func UserEmailKey(email string) string  { return "user-email:" + email }
func UsernameKey(username string) string { return "username:" + username }

// CredentialsKey holds the bcrypt hash for a user; it lives outside the
// profile record so nothing above the auth layer ever loads it.
func CredentialsKey(userID string) string { return "user-credentials:" + userID }

func ArticleKey(id string) string       { return "articles:" + id }
func ArticleSlugKey(slug string) string { return "article-slug:" + slug }
func ChallengeKey(id string) string     { return "challenges:" + id }

func LikeKey(contentType, contentID, userID string) string {
	return fmt.Sprintf("likes:%s:%s:%s", contentType, contentID, userID)
}

func CommentKey(contentType, contentID, commentID string) string {
	return fmt.Sprintf("comments:%s:%s:%s", contentType, contentID, commentID)
}

func CommentPrefix(contentType, contentID string) string {
	return fmt.Sprintf("comments:%s:%s:", contentType, contentID)
}

func NewsletterKey(email string) string { return "newsletter:" + email }
func ContactKey(id string) string       { return "contacts:" + id }

func ChallengeCompletionKey(userID, challengeID string) string {
	return fmt.Sprintf("challenge-completion:%s:%s", userID, challengeID)
}

func ArticleReadKey(userID, articleID string) string {
	return fmt.Sprintf("article-read:%s:%s", userID, articleID)
}

const (
	UserPrefix       = "users:"
	ArticlePrefix    = "articles:"
	ChallengePrefix  = "challenges:"
	CommentsPrefix   = "comments:"
	NewsletterPrefix = "newsletter:"
	ContactPrefix    = "contacts:"
)
