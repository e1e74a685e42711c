package services

import (
	types "github.com/yungbote/erp-backend/internal/domain"
	domainagg "github.com/yungbote/erp-backend/internal/domain/aggregates"
	"github.com/yungbote/erp-backend/internal/dto"
)

// Hand-written DTO <-> model mapping. Server-owned fields (ids on create,
// timestamps, order totals) never flow from a DTO into a model here.

func customerToDTO(c *types.Customer) dto.Customer {
	return dto.Customer{
		CustomerID:  c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Address:     c.Address,
		PhoneNumber: c.PhoneNumber,
	}
}

func customerFromDTO(in dto.Customer) *types.Customer {
	return &types.Customer{
		ID:          in.CustomerID,
		Name:        in.Name,
		Email:       in.Email,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
	}
}

func productToDTO(p *types.Product) dto.Product {
	return dto.Product{
		ProductID:     p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
	}
}

func productFromDTO(in dto.Product) *types.Product {
	return &types.Product{
		ID:            in.ProductID,
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
	}
}

func financialTransactionToDTO(ft *types.FinancialTransaction) dto.FinancialTransaction {
	return dto.FinancialTransaction{
		TransactionID:   ft.ID,
		OrderID:         ft.OrderID,
		TransactionDate: ft.TransactionDate,
		TransactionType: ft.TransactionType,
		Amount:          ft.Amount,
	}
}

func financialTransactionFromDTO(in dto.FinancialTransaction) *types.FinancialTransaction {
	return &types.FinancialTransaction{
		ID:              in.TransactionID,
		OrderID:         in.OrderID,
		TransactionDate: in.TransactionDate,
		TransactionType: in.TransactionType,
		Amount:          in.Amount,
	}
}

// orderToDTO renders the read view: each line shows the product's current
// name, description and price next to the ordered quantity. The total is the
// stored one.
func orderToDTO(o *types.Order) dto.Order {
	out := dto.Order{
		OrderID:     o.ID,
		CustomerID:  o.CustomerID,
		OrderDate:   o.OrderDate,
		TotalAmount: o.TotalAmount,
		Products:    make([]dto.OrderLine, 0, len(o.LineItems)),
	}
	for _, li := range o.LineItems {
		if li == nil {
			continue
		}
		line := dto.OrderLine{ProductID: li.ProductID, Quantity: li.Quantity}
		if li.Product != nil {
			line.Name = li.Product.Name
			line.Description = li.Product.Description
			line.Price = li.Product.Price
		}
		out.Products = append(out.Products, line)
	}
	return out
}

func orderDraftFromDTO(in dto.Order) domainagg.OrderDraft {
	lines := make([]types.PricedLine, 0, len(in.Products))
	for _, p := range in.Products {
		lines = append(lines, types.PricedLine{
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
			UnitPrice: p.Price,
		})
	}
	return domainagg.OrderDraft{
		CustomerID: in.CustomerID,
		OrderDate:  in.OrderDate,
		Lines:      lines,
	}
}
