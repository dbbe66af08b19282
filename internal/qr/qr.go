// Package qr formats invite codes into shareable join and QR image URLs.
package qr

import (
	"fmt"
	"net/url"
)

const (
	joinURLTemplate = "https://toolshare.app/join/%s"
	qrAPITemplate   = "https://api.qrserver.com/v1/create-qr-code/?size=150x150&data=%s"
)

// JoinURL returns the public self-service join link for an invite code.
func JoinURL(inviteCode string) string {
	return fmt.Sprintf(joinURLTemplate, url.PathEscape(inviteCode))
}

// ImageURL returns a QR image URL encoding the join link.
func ImageURL(inviteCode string) string {
	return fmt.Sprintf(qrAPITemplate, url.QueryEscape(JoinURL(inviteCode)))
}
