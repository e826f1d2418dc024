package tweetdto

// TweetCreateInput đầu vào tạo tweet.
type TweetCreateInput struct {
	Content string `json:"content" validate:"required,no_xss"`
}

// TweetUpdateInput đầu vào sửa nội dung tweet.
type TweetUpdateInput struct {
	Content string `json:"content" validate:"required,no_xss"`
}
