package http

import (
	"personal-ai-partner/internal/memory"
	"personal-ai-partner/internal/model"
	"personal-ai-partner/pkg/response"
)

// --- Request DTOs ---

type addKnowledgeReq struct {
	Text string `json:"text" binding:"required"`
}

func (r addKnowledgeReq) validate() error { return nil }

func (r addKnowledgeReq) toInput() memory.AddKnowledgeInput {
	return memory.AddKnowledgeInput{Text: r.Text}
}

// ---

type addPurchaseReq struct {
	Product string `json:"product" binding:"required"`
	Price   string `json:"price"`
	Date    string `json:"date"`
	Source  string `json:"source"`
}

func (r addPurchaseReq) validate() error { return nil }

func (r addPurchaseReq) toInput() memory.AddPurchaseInput {
	return memory.AddPurchaseInput{
		Product: r.Product,
		Price:   r.Price,
		Date:    r.Date,
		Source:  r.Source,
	}
}

// --- Response DTOs ---

type knowledgeResp struct {
	Text string `json:"text"`
}

func newKnowledgeResp(entry model.KnowledgeEntry) knowledgeResp {
	return knowledgeResp{Text: entry.Text}
}

type listKnowledgeResp struct {
	Entries []knowledgeResp `json:"entries"`
	Total   int             `json:"total"`
}

func (h *handler) newListKnowledgeResp(out memory.ListKnowledgeOutput) listKnowledgeResp {
	entries := make([]knowledgeResp, len(out.Entries))
	for i, entry := range out.Entries {
		entries[i] = newKnowledgeResp(entry)
	}
	return listKnowledgeResp{
		Entries: entries,
		Total:   out.Total,
	}
}

type addKnowledgeResp struct {
	Entry knowledgeResp `json:"entry"`
}

func (h *handler) newAddKnowledgeResp(out memory.AddKnowledgeOutput) addKnowledgeResp {
	return addKnowledgeResp{Entry: newKnowledgeResp(out.Entry)}
}

type purchaseResp struct {
	ID         string            `json:"id"`
	Product    string            `json:"product"`
	Price      string            `json:"price"`
	Date       string            `json:"date"`
	Source     string            `json:"source"`
	RecordedAt response.DateTime `json:"recorded_at"`
}

func newPurchaseResp(p model.Purchase) purchaseResp {
	return purchaseResp{
		ID:         p.ID,
		Product:    p.Product,
		Price:      p.Price,
		Date:       p.Date,
		Source:     p.Source,
		RecordedAt: response.DateTime(p.RecordedAt),
	}
}

type listPurchasesResp struct {
	Purchases []purchaseResp `json:"purchases"`
	Total     int            `json:"total"`
}

func (h *handler) newListPurchasesResp(out memory.ListPurchasesOutput) listPurchasesResp {
	purchases := make([]purchaseResp, len(out.Purchases))
	for i, p := range out.Purchases {
		purchases[i] = newPurchaseResp(p)
	}
	return listPurchasesResp{
		Purchases: purchases,
		Total:     out.Total,
	}
}

type addPurchaseResp struct {
	Purchase purchaseResp `json:"purchase"`
}

func (h *handler) newAddPurchaseResp(out memory.AddPurchaseOutput) addPurchaseResp {
	return addPurchaseResp{Purchase: newPurchaseResp(out.Purchase)}
}
