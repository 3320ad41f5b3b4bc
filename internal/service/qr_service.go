package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"

	_ "image/jpeg"
	_ "image/png"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/yeqown/go-qrcode"
)

// QRService encode/decode mã QR dùng ở cổng vào/ra. Stateless.
type QRService struct{}

func NewQRService() *QRService {
	return &QRService{}
}

// Encode serialize payload thành JSON rồi render thành ảnh QR (JPEG).
func (s *QRService) Encode(payload map[string]any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("QRService.Encode (marshal payload): %w", err)
	}
	qrc, err := qrcode.New(string(raw))
	if err != nil {
		return nil, fmt.Errorf("QRService.Encode: %w", err)
	}
	var buf bytes.Buffer
	if err := qrc.SaveTo(&buf); err != nil {
		return nil, fmt.Errorf("QRService.Encode (render ảnh): %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeExit - mã QR cổng ra chỉ chứa id lượt vào.
func (s *QRService) EncodeExit(entranceID string) ([]byte, error) {
	return s.Encode(map[string]any{"entranceId": entranceID})
}

// Decode tìm và giải mã QR trong ảnh. Trả về (nil, nil) nếu ảnh hợp lệ nhưng
// không chứa mã nào; trả về error nếu không đọc được ảnh - hai trường hợp
// này phải phân biệt được ở caller.
func (s *QRService) Decode(imageData []byte) (map[string]any, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("QRService.Decode (đọc ảnh): %w", err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("QRService.Decode (chuyển bitmap): %w", err)
	}

	result, err := zxqr.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		if _, ok := err.(gozxing.NotFoundException); ok {
			// Ảnh không chứa mã QR - không phải lỗi.
			return nil, nil
		}
		return nil, fmt.Errorf("QRService.Decode: %w", err)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(result.GetText()), &payload); err != nil {
		// Mã không chứa JSON, trả về text thô.
		return map[string]any{"text": result.GetText()}, nil
	}
	return payload, nil
}
