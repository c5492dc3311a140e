package handlers

import (
	"github.com/shopspring/decimal"

	"github.com/polkiloo/campusmart/internal/domain/model"
	"github.com/polkiloo/campusmart/internal/server/http/dto"
)

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func toCartLines(lines []model.CartLine) []dto.CartLineResponse {
	out := make([]dto.CartLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, toCartLine(l))
	}
	return out
}

func toCartLine(l model.CartLine) dto.CartLineResponse {
	return dto.CartLineResponse{
		ID:          l.ID,
		ProductID:   l.ProductID,
		ProductName: l.ProductName,
		UnitPrice:   amount(l.UnitPrice),
		Quantity:    l.Quantity,
		Subtotal:    amount(l.Subtotal()),
		Stock:       l.Stock,
		MerchantID:  l.MerchantID,
	}
}

func toGroups(groups []model.MerchantGroup) []dto.MerchantGroupResponse {
	out := make([]dto.MerchantGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.MerchantGroupResponse{
			MerchantID:   g.MerchantID,
			MerchantName: g.MerchantName,
			Lines:        toCartLines(g.Lines),
			Subtotal:     amount(g.Subtotal),
		})
	}
	return out
}

func toContact(c dto.ContactRequest) model.ContactInfo {
	return model.ContactInfo{FirstName: c.FirstName, LastName: c.LastName, Location: c.Location, Phone: c.Phone}
}

func fromContact(c model.ContactInfo) dto.ContactRequest {
	return dto.ContactRequest{FirstName: c.FirstName, LastName: c.LastName, Location: c.Location, Phone: c.Phone}
}

func toProducts(products []model.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProduct(p))
	}
	return out
}

func toProduct(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{ID: p.ID, MerchantID: p.MerchantID, Name: p.Name, Price: amount(p.Price), Stock: p.Stock}
}

func toOrder(o model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:          o.ID,
		MerchantID:  o.MerchantID,
		Status:      string(o.Status),
		TotalAmount: amount(o.TotalAmount),
		Contact:     fromContact(o.Contact),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ProductName: it.ProductName,
			Price:       amount(it.Price),
			Quantity:    it.Quantity,
			Subtotal:    amount(it.Subtotal),
		})
	}
	return resp
}
