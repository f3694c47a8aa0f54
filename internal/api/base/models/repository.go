// Package models chứa các kiểu kết quả dùng chung cho layer repository/base.
package models

// PaginateResult là kết quả của FindWithPagination.
type PaginateResult[T any] struct {
	Page      int64 `json:"page" bson:"page"`           // Trang hiện tại (bắt đầu từ 1)
	Limit     int64 `json:"limit" bson:"limit"`         // Số lượng mục trên mỗi trang
	ItemCount int64 `json:"itemCount" bson:"itemCount"` // Số lượng mục trong trang hiện tại
	Items     []T   `json:"items" bson:"items"`         // Danh sách các mục
	Total     int64 `json:"total" bson:"total"`         // Tổng số mục khớp filter
	TotalPage int64 `json:"totalPage" bson:"totalPage"` // Tổng số trang
}

// CountResult bọc số lượng trả về từ các operation đếm hoặc ghi hàng loạt
// (CountDocuments, UpdateMany, DeleteMany).
type CountResult struct {
	Count int64 `json:"count" bson:"count"`
}
