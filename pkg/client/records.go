// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package client

import (
	"time"

	"github.com/shopspring/decimal"
)

// User implements a staff or customer account.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

func (r User) RecordID() string            { return r.ID }
func (r User) WithRecordID(id string) User { r.ID = id; return r }

// Product implements a catalog product.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category,omitempty"`
	Brand       string          `json:"brand,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Featured    bool            `json:"featured,omitempty"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"imageUrl,omitempty"`
}

func (r Product) RecordID() string               { return r.ID }
func (r Product) WithRecordID(id string) Product { r.ID = id; return r }

// Article implements a published article.
type Article struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
	Author  string `json:"author,omitempty"`
	Date    string `json:"date,omitempty"`
}

func (r Article) RecordID() string               { return r.ID }
func (r Article) WithRecordID(id string) Article { r.ID = id; return r }

// OrderItem implements one line of an order.
type OrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Order implements a customer order.
type Order struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customerId,omitempty"`
	Items       []OrderItem     `json:"items,omitempty"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status,omitempty"`
	Date        string          `json:"date,omitempty"`
	Address     string          `json:"address,omitempty"`
}

func (r Order) RecordID() string             { return r.ID }
func (r Order) WithRecordID(id string) Order { r.ID = id; return r }

// ChatLog implements a recorded support conversation.
type ChatLog struct {
	ID       string `json:"id"`
	Customer string `json:"customer,omitempty"`
	Agent    string `json:"agent,omitempty"`
	Message  string `json:"message"`
	Date     string `json:"date,omitempty"`
}

func (r ChatLog) RecordID() string               { return r.ID }
func (r ChatLog) WithRecordID(id string) ChatLog { r.ID = id; return r }

// MediaItem implements an uploaded media asset.
type MediaItem struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url"`
	Type string `json:"type,omitempty"`
}

func (r MediaItem) RecordID() string                 { return r.ID }
func (r MediaItem) WithRecordID(id string) MediaItem { r.ID = id; return r }

// Transaction implements a financial transaction.
type Transaction struct {
	ID          string          `json:"id"`
	Type        string          `json:"type,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date,omitempty"`
}

func (r Transaction) RecordID() string                   { return r.ID }
func (r Transaction) WithRecordID(id string) Transaction { r.ID = id; return r }

// PayrollEntry implements one payroll line for an employee.
type PayrollEntry struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employeeId"`
	Period     string          `json:"period,omitempty"`
	BaseSalary decimal.Decimal `json:"baseSalary"`
	Bonus      decimal.Decimal `json:"bonus,omitempty"`
	Deductions decimal.Decimal `json:"deductions,omitempty"`
	NetPay     decimal.Decimal `json:"netPay"`
}

func (r PayrollEntry) RecordID() string                    { return r.ID }
func (r PayrollEntry) WithRecordID(id string) PayrollEntry { r.ID = id; return r }

// Debt implements an outstanding customer or supplier debt.
type Debt struct {
	ID      string          `json:"id"`
	Party   string          `json:"party,omitempty"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate string          `json:"dueDate,omitempty"`
	Status  string          `json:"status,omitempty"`
}

func (r Debt) RecordID() string            { return r.ID }
func (r Debt) WithRecordID(id string) Debt { r.ID = id; return r }

// PaymentApproval implements a pending payment approval request.
type PaymentApproval struct {
	ID        string          `json:"id"`
	Requester string          `json:"requester,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Purpose   string          `json:"purpose,omitempty"`
	Status    string          `json:"status,omitempty"`
}

func (r PaymentApproval) RecordID() string                       { return r.ID }
func (r PaymentApproval) WithRecordID(id string) PaymentApproval { r.ID = id; return r }

// ServiceTicket implements a repair or support ticket.
type ServiceTicket struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId,omitempty"`
	Device     string `json:"device,omitempty"`
	Issue      string `json:"issue,omitempty"`
	Status     string `json:"status,omitempty"`
	AssignedTo string `json:"assignedTo,omitempty"`
	Date       string `json:"date,omitempty"`
}

func (r ServiceTicket) RecordID() string                     { return r.ID }
func (r ServiceTicket) WithRecordID(id string) ServiceTicket { r.ID = id; return r }

// Quotation implements a sales quotation.
type Quotation struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId,omitempty"`
	Items      []OrderItem     `json:"items,omitempty"`
	Total      decimal.Decimal `json:"total"`
	ValidUntil string          `json:"validUntil,omitempty"`
	Status     string          `json:"status,omitempty"`
}

func (r Quotation) RecordID() string                 { return r.ID }
func (r Quotation) WithRecordID(id string) Quotation { r.ID = id; return r }

// ReturnRequest implements a product return request.
type ReturnRequest struct {
	ID      string `json:"id"`
	OrderID string `json:"orderId"`
	Reason  string `json:"reason,omitempty"`
	Status  string `json:"status,omitempty"`
	Date    string `json:"date,omitempty"`
}

func (r ReturnRequest) RecordID() string                     { return r.ID }
func (r ReturnRequest) WithRecordID(id string) ReturnRequest { r.ID = id; return r }

// Supplier implements a supplier account.
type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

func (r Supplier) RecordID() string                { return r.ID }
func (r Supplier) WithRecordID(id string) Supplier { r.ID = id; return r }

// WarrantyClaim implements a warranty claim.
type WarrantyClaim struct {
	ID           string `json:"id"`
	ProductID    string `json:"productId,omitempty"`
	CustomerID   string `json:"customerId,omitempty"`
	SerialNumber string `json:"serialNumber,omitempty"`
	Issue        string `json:"issue,omitempty"`
	Status       string `json:"status,omitempty"`
}

func (r WarrantyClaim) RecordID() string                     { return r.ID }
func (r WarrantyClaim) WithRecordID(id string) WarrantyClaim { r.ID = id; return r }

// WarrantyTicket implements a warranty service ticket.
type WarrantyTicket struct {
	ID         string `json:"id"`
	ClaimID    string `json:"claimId,omitempty"`
	Technician string `json:"technician,omitempty"`
	Status     string `json:"status,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

func (r WarrantyTicket) RecordID() string                      { return r.ID }
func (r WarrantyTicket) WithRecordID(id string) WarrantyTicket { r.ID = id; return r }

// InventoryItem implements one stock level entry.
type InventoryItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Warehouse string `json:"warehouse,omitempty"`
	Quantity  int    `json:"quantity"`
}

func (r InventoryItem) RecordID() string                     { return r.ID }
func (r InventoryItem) WithRecordID(id string) InventoryItem { r.ID = id; return r }

// AuditLog implements one audit log entry.
type AuditLog struct {
	ID     string `json:"id"`
	Actor  string `json:"actor,omitempty"`
	Action string `json:"action"`
	Target string `json:"target,omitempty"`
	Date   string `json:"date,omitempty"`
}

func (r AuditLog) RecordID() string                { return r.ID }
func (r AuditLog) WithRecordID(id string) AuditLog { r.ID = id; return r }

// Warehouse implements a storage location. Warehouses have no backend
// endpoint and live only in the mirror.
type Warehouse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	Capacity int    `json:"capacity,omitempty"`
}

func (r Warehouse) RecordID() string                 { return r.ID }
func (r Warehouse) WithRecordID(id string) Warehouse { r.ID = id; return r }

// StockMovement implements a stock receipt, issue or transfer. Stock
// movements have no backend endpoint and live only in the mirror.
type StockMovement struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Note      string `json:"note,omitempty"`
	Date      string `json:"date,omitempty"`
}

func (r StockMovement) RecordID() string                     { return r.ID }
func (r StockMovement) WithRecordID(id string) StockMovement { r.ID = id; return r }

// Campaign implements a marketing campaign placeholder. Campaigns have no
// backend endpoint and live only in the mirror.
type Campaign struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Budget decimal.Decimal `json:"budget,omitempty"`
	Start  string          `json:"start,omitempty"`
	End    string          `json:"end,omitempty"`
}

func (r Campaign) RecordID() string                { return r.ID }
func (r Campaign) WithRecordID(id string) Campaign { r.ID = id; return r }

// Notification implements one back-office notification. Notifications live
// only in the mirror; the accessor keeps the most recent entries only.
type Notification struct {
	ID      string    `json:"id"`
	Level   string    `json:"level,omitempty"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read,omitempty"`
}

func (r Notification) RecordID() string                    { return r.ID }
func (r Notification) WithRecordID(id string) Notification { r.ID = id; return r }

// ServerInfo implements the backend identity response.
type ServerInfo struct {
	Name        string `json:"name,omitempty"`
	Version     string `json:"version,omitempty"`
	Environment string `json:"environment,omitempty"`
	Uptime      int64  `json:"uptime,omitempty"`
}

// HealthStatus implements the backend health response.
type HealthStatus struct {
	Status string `json:"status"`
}

// Forecast implements the server-computed financial forecast.
type Forecast struct {
	Period           string          `json:"period,omitempty"`
	ProjectedRevenue decimal.Decimal `json:"projectedRevenue"`
	ProjectedExpense decimal.Decimal `json:"projectedExpense"`
}

// Credentials implements the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
