// Package media - Test quy ước publicId và object key của kho lưu trữ.
package media

import "testing"

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://cdn.example.com/videos/64f1b2a3c4d5e6f708091a0b", "64f1b2a3c4d5e6f708091a0b"},
		{"https://cdn.example.com/thumbnails/abc123.png", "abc123"},
		{"https://bucket.s3.ap-southeast-1.amazonaws.com/images/xyz", "xyz"},
		{"", ""},
	}

	for _, tc := range cases {
		got := PublicIDFromURL(tc.url)
		if got != tc.want {
			t.Errorf("PublicIDFromURL(%q) = %q, muốn %q", tc.url, got, tc.want)
		}
	}
}

func TestObjectKey_RoundTripsWithPublicIDFromURL(t *testing.T) {
	// Object key không chứa extension nên publicId luôn trích lại được từ URL
	publicID := "64f1b2a3c4d5e6f708091a0b"
	key := objectKey(KindVideo, publicID)
	if key != "videos/"+publicID {
		t.Fatalf("objectKey = %q, muốn %q", key, "videos/"+publicID)
	}

	url := "https://cdn.example.com/" + key
	if got := PublicIDFromURL(url); got != publicID {
		t.Errorf("PublicIDFromURL(%q) = %q, không khớp publicId gốc %q", url, got, publicID)
	}
}

func TestObjectKey_Kinds(t *testing.T) {
	if got := objectKey(KindThumbnail, "a1"); got != "thumbnails/a1" {
		t.Errorf("objectKey(KindThumbnail) = %q", got)
	}
	if got := objectKey(KindImage, "a2"); got != "images/a2" {
		t.Errorf("objectKey(KindImage) = %q", got)
	}
}
