// Package identity bọc nhà cung cấp danh tính ngoài (Firebase Auth).
// Chỉ dùng cho việc liên kết và xóa tài khoản quản trị viên.
package identity

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

type Provider interface {
	DeleteUser(ctx context.Context, subjectID string) error
}

type firebaseProvider struct {
	client *auth.Client
}

func NewFirebaseProvider(ctx context.Context, credentialsFile string) (Provider, error) {
	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("lỗi khởi tạo Firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("lỗi khởi tạo Firebase Auth: %w", err)
	}
	return &firebaseProvider{client: client}, nil
}

func (p *firebaseProvider) DeleteUser(ctx context.Context, subjectID string) error {
	if err := p.client.DeleteUser(ctx, subjectID); err != nil {
		return fmt.Errorf("lỗi xóa người dùng '%s' trên Firebase: %w", subjectID, err)
	}
	return nil
}
