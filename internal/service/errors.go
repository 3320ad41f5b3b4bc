package service

import "errors"

var ErrInvalidSlotStatus = errors.New("trạng thái chỗ đỗ không hợp lệ")
var ErrNoFieldsToUpdate = errors.New("không có trường nào để cập nhật")
var ErrInvalidTransition = errors.New("chuyển trạng thái phiên đỗ xe không hợp lệ")
var ErrAdminNotLinked = errors.New("quản trị viên chưa liên kết danh tính ngoài")
var ErrIdentityNotConfigured = errors.New("nhà cung cấp danh tính chưa được cấu hình")

// ChangeNotifier - capability bắn tín hiệu "dữ liệu đã thay đổi" cho mọi client
// đang kết nối. Fire-and-forget, không đảm bảo thứ tự hay delivery.
type ChangeNotifier interface {
	NotifyDataChanged()
}
