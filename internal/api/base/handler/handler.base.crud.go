package basehdl

import (
	"context"
	"encoding/json"
	"fmt"

	authsvc "meta_booking/internal/api/auth/services"
	"meta_booking/internal/api/base/models"
	"meta_booking/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// requestContext trả về context của request, kèm userID (nếu đã xác thực)
// để tầng service có thể kiểm tra quyền trên dữ liệu hệ thống.
func (h *BaseHandler[T, CreateInput, UpdateInput]) requestContext(c fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if userIDStr, ok := c.Locals("user_id").(string); ok && userIDStr != "" {
		if userID, err := primitive.ObjectIDFromHex(userIDStr); err == nil {
			ctx = authsvc.SetUserIDToContext(ctx, userID)
		}
	}
	return ctx
}

// InsertOne xử lý request tạo mới một document.
// Flow:
// 1. Parse và validate dữ liệu đầu vào (CreateInput)
// 2. Transform CreateInput sang Model qua struct tag transform
// 3. Gọi service để lưu vào database
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertOne(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		input := new(CreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		if err := h.ValidateInput(input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		model, err := h.TransformCreateInputToModel(input)
		if err != nil {
			return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, err))
		}

		data, err := h.BaseService.InsertOne(h.requestContext(c), *model)
		return h.HandleResponse(c, data, err)
	})
}

// InsertMany xử lý request tạo mới nhiều document cùng lúc.
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertMany(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var inputs []CreateInput
		if err := h.ParseRequestBody(c, &inputs); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		if len(inputs) == 0 {
			return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Danh sách dữ liệu tạo mới không được rỗng", common.StatusBadRequest, nil))
		}

		models := make([]T, 0, len(inputs))
		for i := range inputs {
			if err := h.ValidateInput(&inputs[i]); err != nil {
				return h.HandleResponse(c, nil, err)
			}

			model, err := h.TransformCreateInputToModel(&inputs[i])
			if err != nil {
				return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, err))
			}
			models = append(models, *model)
		}

		data, err := h.BaseService.InsertMany(h.requestContext(c), models)
		return h.HandleResponse(c, data, err)
	})
}

// FindOne tìm một document theo filter từ query string.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOne(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			return h.HandleResponse(c, nil, err)
		}

		opts, err := h.processMongoOptions(c, true)
		if err != nil {
			return h.HandleResponse(c, nil, err)
		}

		findOneOpts, _ := opts.(*mongoopts.FindOneOptions)
		data, err := h.BaseService.FindOne(h.requestContext(c), filter, findOneOpts)
		return h.HandleResponse(c, data, err)
	})
}

// FindOneById tìm một document theo ID từ URI params.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("ID không hợp lệ: %s", id), common.StatusBadRequest, err))
		}

		data, err := h.BaseService.FindOneById(h.requestContext(c), objectID)
		return h.HandleResponse(c, data, err)
	})
}

// FindManyByIds tìm nhiều document theo danh sách ID trong request body.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindManyByIds(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var input struct {
			IDs []string `json:"ids" validate:"required,min=1"`
		}
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		if err := h.ValidateInput(&input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		ids := make([]primitive.ObjectID, 0, len(input.IDs))
		for _, idStr := range input.IDs {
			objectID, err := primitive.ObjectIDFromHex(idStr)
			if err != nil {
				return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("ID không hợp lệ: %s", idStr), common.StatusBadRequest, err))
			}
			ids = append(ids, objectID)
		}

		data, err := h.BaseService.FindManyByIds(h.requestContext(c), ids)
		return h.HandleResponse(c, data, err)
	})
}

// FindWithPagination tìm nhiều document có phân trang.
// Hỗ trợ query params: filter, page, limit.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindWithPagination(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			return h.HandleResponse(c, nil, err)
		}

		page, limit := h.ParsePagination(c)

		data, err := h.BaseService.FindWithPagination(h.requestContext(c), filter, page, limit, nil)
		return h.HandleResponse(c, data, err)
	})
}

// Find tìm nhiều document theo filter, không phân trang.
// Hỗ trợ query params: filter, options (projection, sort, limit, skip).
func (h *BaseHandler[T, CreateInput, UpdateInput]) Find(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			return h.HandleResponse(c, nil, err)
		}

		opts, err := h.processMongoOptions(c, false)
		if err != nil {
			return h.HandleResponse(c, nil, err)
		}

		findOpts, _ := opts.(*mongoopts.FindOptions)
		data, err := h.BaseService.Find(h.requestContext(c), filter, findOpts)
		return h.HandleResponse(c, data, err)
	})
}

// UpdateOne cập nhật một document theo filter.
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateOne(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			return h.HandleResponse(c, nil, err)
		}

		input := new(UpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		if err := h.ValidateInput(input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		model, err := h.TransformUpdateInputToModel(input)
		if err != nil {
			return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, err))
		}

		data, err := h.BaseService.UpdateOne(h.requestContext(c), filter, *model, nil)
		return h.HandleResponse(c, data, err)
	})
}

// UpdateMany cập nhật nhiều document theo filter, trả về số lượng đã cập nhật.
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateMany(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			return h.HandleResponse(c, nil, err)
		}

		input := new(UpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		if err := h.ValidateInput(input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		model, err := h.TransformUpdateInputToModel(input)
		if err != nil {
			return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, err))
		}

		count, err := h.BaseService.UpdateMany(h.requestContext(c), filter, *model, nil)
		return h.HandleResponse(c, models.CountResult{Count: count}, err)
	})
}

// UpdateById cập nhật một document theo ID từ URI params.
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("ID không hợp lệ: %s", id), common.StatusBadRequest, err))
		}

		input := new(UpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		if err := h.ValidateInput(input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		model, err := h.TransformUpdateInputToModel(input)
		if err != nil {
			return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, err))
		}

		data, err := h.BaseService.UpdateById(h.requestContext(c), objectID, *model)
		return h.HandleResponse(c, data, err)
	})
}

// DeleteOne xóa một document theo filter.
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteOne(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			return h.HandleResponse(c, nil, err)
		}

		if len(filter) == 0 {
			return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Filter không được rỗng khi xóa dữ liệu", common.StatusBadRequest, nil))
		}

		err = h.BaseService.DeleteOne(h.requestContext(c), filter)
		return h.HandleResponse(c, nil, err)
	})
}

// DeleteMany xóa nhiều document theo filter, trả về số lượng đã xóa.
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteMany(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			return h.HandleResponse(c, nil, err)
		}

		if len(filter) == 0 {
			return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Filter không được rỗng khi xóa dữ liệu", common.StatusBadRequest, nil))
		}

		count, err := h.BaseService.DeleteMany(h.requestContext(c), filter)
		return h.HandleResponse(c, models.CountResult{Count: count}, err)
	})
}

// DeleteById xóa một document theo ID từ URI params.
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("ID không hợp lệ: %s", id), common.StatusBadRequest, err))
		}

		err = h.BaseService.DeleteById(h.requestContext(c), objectID)
		return h.HandleResponse(c, nil, err)
	})
}

// FindOneAndUpdate tìm một document theo filter và cập nhật, trả về document sau khi cập nhật.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneAndUpdate(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			return h.HandleResponse(c, nil, err)
		}

		input := new(UpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		if err := h.ValidateInput(input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		model, err := h.TransformUpdateInputToModel(input)
		if err != nil {
			return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, err))
		}

		data, err := h.BaseService.FindOneAndUpdate(h.requestContext(c), filter, *model, nil)
		return h.HandleResponse(c, data, err)
	})
}

// FindOneAndDelete tìm một document theo filter và xóa, trả về document trước khi xóa.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneAndDelete(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			return h.HandleResponse(c, nil, err)
		}

		if len(filter) == 0 {
			return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Filter không được rỗng khi xóa dữ liệu", common.StatusBadRequest, nil))
		}

		data, err := h.BaseService.FindOneAndDelete(h.requestContext(c), filter, nil)
		return h.HandleResponse(c, data, err)
	})
}

// CountDocuments đếm số lượng document theo filter.
func (h *BaseHandler[T, CreateInput, UpdateInput]) CountDocuments(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			return h.HandleResponse(c, nil, err)
		}

		count, err := h.BaseService.CountDocuments(h.requestContext(c), filter)
		return h.HandleResponse(c, models.CountResult{Count: count}, err)
	})
}

// Distinct lấy danh sách giá trị duy nhất của một trường theo filter.
// Query params: field (bắt buộc), filter.
func (h *BaseHandler[T, CreateInput, UpdateInput]) Distinct(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		field := c.Query("field")
		if field == "" {
			return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu tham số field", common.StatusBadRequest, nil))
		}

		filter, err := h.ProcessFilter(c)
		if err != nil {
			return h.HandleResponse(c, nil, err)
		}

		data, err := h.BaseService.Distinct(h.requestContext(c), field, filter)
		return h.HandleResponse(c, data, err)
	})
}

// Upsert tạo mới hoặc cập nhật một document theo filter.
// Body: {"filter": {...}, "update": {...}}
func (h *BaseHandler[T, CreateInput, UpdateInput]) Upsert(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var body struct {
			Filter map[string]interface{} `json:"filter" validate:"required"`
			Update json.RawMessage        `json:"update" validate:"required"`
		}
		if err := h.ParseRequestBody(c, &body); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		if len(body.Filter) == 0 {
			return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Filter không được rỗng khi upsert dữ liệu", common.StatusBadRequest, nil))
		}

		filter := h.normalizeFilter(body.Filter)
		if err := h.validateFilter(filter); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		input := new(UpdateInput)
		if err := json.Unmarshal(body.Update, input); err != nil {
			return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err))
		}

		if err := h.ValidateInput(input); err != nil {
			return h.HandleResponse(c, nil, err)
		}

		model, err := h.TransformUpdateInputToModel(input)
		if err != nil {
			return h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, err))
		}

		data, err := h.BaseService.Upsert(h.requestContext(c), filter, *model)
		return h.HandleResponse(c, data, err)
	})
}

// DocumentExists kiểm tra document có tồn tại theo filter hay không.
func (h *BaseHandler[T, CreateInput, UpdateInput]) DocumentExists(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			return h.HandleResponse(c, nil, err)
		}

		exists, err := h.BaseService.DocumentExists(h.requestContext(c), filter)
		return h.HandleResponse(c, fiber.Map{"exists": exists}, err)
	})
}
