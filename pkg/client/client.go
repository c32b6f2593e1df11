// Copyright 2024-2026 Nexatech. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package client implements the data-access client of the storefront and
// back-office backend. Every accessor composes the remote gateway with the
// local mirror store so that callers keep working during a backend outage;
// the shape of a result never reveals which of the two served it.
package client

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/nexatech/outpost/pkg/core"
	"github.com/nexatech/outpost/pkg/gateway"
	"github.com/nexatech/outpost/pkg/log"
	"github.com/nexatech/outpost/pkg/mirror"
	"github.com/nexatech/outpost/pkg/module"
)

const (
	// Name is the client name.
	Name string = "outpost"
	// Version is the client version.
	Version string = "1.2.0"

	clientLogger string = "client"
)

// Client is the data-access client. One collection exists per resource; the
// per-resource fallback behavior is declared in the collection specs below.
type Client struct {
	logger  *slog.Logger
	gateway core.Gateway
	storage core.StorageModule
	mirror  *mirror.Store
	session *Session

	Users            *Collection[User]
	Products         *Collection[Product]
	Articles         *Collection[Article]
	Orders           *Collection[Order]
	ChatLogs         *Collection[ChatLog]
	Media            *Collection[MediaItem]
	Transactions     *Collection[Transaction]
	Payroll          *Collection[PayrollEntry]
	Debts            *Collection[Debt]
	PaymentApprovals *Collection[PaymentApproval]
	ServiceTickets   *Collection[ServiceTicket]
	Quotations       *Collection[Quotation]
	Returns          *Collection[ReturnRequest]
	Suppliers        *Collection[Supplier]
	WarrantyClaims   *Collection[WarrantyClaim]
	WarrantyTickets  *Collection[WarrantyTicket]
	Inventory        *Collection[InventoryItem]
	AuditLogs        *Collection[AuditLog]
	Warehouses       *Collection[Warehouse]
	StockReceipts    *Collection[StockMovement]
	StockIssues      *Collection[StockMovement]
	StockTransfers   *Collection[StockMovement]
	Campaigns        *Collection[Campaign]
	Notifications    *Collection[Notification]
}

// Mirror entry keys. The mirror is shared by every client of the same
// profile; the session is not part of it.
const (
	keyUsers            string = "siteUsers_v1"
	keyProducts         string = "siteProducts_v1"
	keyArticles         string = "siteArticles_v1"
	keyOrders           string = "siteOrders_v1"
	keyChatLogs         string = "chatLogs_v1"
	keyMedia            string = "mediaLibrary_v1"
	keyTransactions     string = "financialTransactions_v1"
	keyPayroll          string = "payrollEntries_v1"
	keyDebts            string = "debts_v1"
	keyPaymentApprovals string = "paymentApprovals_v1"
	keyServiceTickets   string = "serviceTickets_v1"
	keyQuotations       string = "quotations_v1"
	keyReturns          string = "returns_v1"
	keySuppliers        string = "suppliers_v1"
	keyWarrantyClaims   string = "warrantyClaims_v1"
	keyWarrantyTickets  string = "warrantyTickets_v1"
	keyInventory        string = "inventory_v1"
	keyAuditLogs        string = "auditLogs_v1"
	keyWarehouses       string = "warehouses"
	keyStockReceipts    string = "stock-receipts"
	keyStockIssues      string = "stock-issues"
	keyStockTransfers   string = "stock-transfers"
	keyCampaigns        string = "campaigns"
	keyNotifications    string = "admin-notifications"
)

const notificationsLimit int = 50

// New creates a new client with the given configuration.
func New(config *Config) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	logger := slog.New(log.NewHandler(os.Stderr, clientLogger, nil))

	gw, err := gateway.New(config.Gateway)
	if err != nil {
		return nil, fmt.Errorf("init gateway: %w", err)
	}

	storage, err := newStorage(config.Storage, logger)
	if err != nil {
		return nil, err
	}

	return newClient(gw, storage, logger), nil
}

// newStorage instantiates the configured mirror storage module.
func newStorage(config map[string]map[string]interface{}, logger *slog.Logger) (
	core.StorageModule, error) {
	if len(config) == 0 {
		config = map[string]map[string]interface{}{
			"memory": {},
		}
	}
	for name, storageConfig := range config {
		moduleInfo, err := module.Lookup(module.ModuleID("storage." + name))
		if err != nil {
			return nil, fmt.Errorf("unregistered storage module '%s'", name)
		}
		storage, ok := moduleInfo.NewInstance().(core.StorageModule)
		if !ok {
			return nil, errors.New("invalid storage module")
		}
		if storageConfig == nil {
			storageConfig = map[string]interface{}{}
		}
		if err := storage.Init(storageConfig, logger); err != nil {
			return nil, fmt.Errorf("init storage module: %w", err)
		}
		return storage, nil
	}
	return nil, errors.New("no storage defined")
}

// newClient assembles a client from its components.
func newClient(gw core.Gateway, storage core.StorageModule, logger *slog.Logger) *Client {
	store := mirror.New(storage, mirror.NewBus())

	c := Client{
		logger:  logger,
		gateway: gw,
		storage: storage,
		mirror:  store,
	}
	c.session = newSession(&c)

	c.Users = newCollection[User](Spec{
		Name: "user", Path: "/users", Key: keyUsers, Prefix: "user",
		CacheOnRead: true,
	}, gw, store, logger)
	c.Products = newCollection[Product](Spec{
		Name: "product", Path: "/products", Key: keyProducts, Prefix: "prod",
	}, gw, store, logger)
	c.Articles = newCollection[Article](Spec{
		Name: "article", Path: "/articles", Key: keyArticles, Prefix: "art",
	}, gw, store, logger)
	c.Orders = newCollection[Order](Spec{
		Name: "order", Path: "/orders", Key: keyOrders, Prefix: "order",
		CacheOnRead: true,
	}, gw, store, logger)
	c.ChatLogs = newCollection[ChatLog](Spec{
		Name: "chat log", Path: "/chatlogs", Key: keyChatLogs, Prefix: "chat",
	}, gw, store, logger)
	c.Media = newCollection[MediaItem](Spec{
		Name: "media item", Path: "/media", Key: keyMedia, Prefix: "media",
	}, gw, store, logger)
	c.Transactions = newCollection[Transaction](Spec{
		Name: "transaction", Path: "/financials/transactions", Key: keyTransactions,
		Prefix: "txn",
	}, gw, store, logger)
	c.Payroll = newCollection[PayrollEntry](Spec{
		Name: "payroll entry", Path: "/financials/payroll", Key: keyPayroll, Prefix: "pay",
	}, gw, store, logger)
	c.Debts = newCollection[Debt](Spec{
		Name: "debt", Path: "/debts", Key: keyDebts, Prefix: "debt",
	}, gw, store, logger)
	c.PaymentApprovals = newCollection[PaymentApproval](Spec{
		Name: "payment approval", Path: "/payment-approvals", Key: keyPaymentApprovals,
		Prefix: "appr",
	}, gw, store, logger)
	c.ServiceTickets = newCollection[ServiceTicket](Spec{
		Name: "service ticket", Path: "/service-tickets", Key: keyServiceTickets,
		Prefix: "st",
	}, gw, store, logger)
	c.Quotations = newCollection[Quotation](Spec{
		Name: "quotation", Path: "/quotations", Key: keyQuotations, Prefix: "quo",
	}, gw, store, logger)
	c.Returns = newCollection[ReturnRequest](Spec{
		Name: "return request", Path: "/returns", Key: keyReturns, Prefix: "ret",
	}, gw, store, logger)
	c.Suppliers = newCollection[Supplier](Spec{
		Name: "supplier", Path: "/suppliers", Key: keySuppliers, Prefix: "sup",
	}, gw, store, logger)
	c.WarrantyClaims = newCollection[WarrantyClaim](Spec{
		Name: "warranty claim", Path: "/warranty-claims", Key: keyWarrantyClaims,
		Prefix: "wc",
	}, gw, store, logger)
	c.WarrantyTickets = newCollection[WarrantyTicket](Spec{
		Name: "warranty ticket", Path: "/warranty-tickets", Key: keyWarrantyTickets,
		Prefix: "wt",
	}, gw, store, logger)
	c.Inventory = newCollection[InventoryItem](Spec{
		Name: "inventory item", Path: "/inventory", Key: keyInventory, ReadOnly: true,
	}, gw, store, logger)
	c.AuditLogs = newCollection[AuditLog](Spec{
		Name: "audit log", Path: "/audit-logs", Key: keyAuditLogs, ReadOnly: true,
	}, gw, store, logger)

	// Mirror-only resources: added after the backend contract stabilized,
	// they have no endpoint and are per-profile state.
	c.Warehouses = newCollection[Warehouse](Spec{
		Name: "warehouse", Key: keyWarehouses, Prefix: "wh",
	}, gw, store, logger)
	c.StockReceipts = newCollection[StockMovement](Spec{
		Name: "stock receipt", Key: keyStockReceipts, Prefix: "sr",
	}, gw, store, logger)
	c.StockIssues = newCollection[StockMovement](Spec{
		Name: "stock issue", Key: keyStockIssues, Prefix: "si",
	}, gw, store, logger)
	c.StockTransfers = newCollection[StockMovement](Spec{
		Name: "stock transfer", Key: keyStockTransfers, Prefix: "stf",
	}, gw, store, logger)
	c.Campaigns = newCollection[Campaign](Spec{
		Name: "campaign", Key: keyCampaigns, Prefix: "cmp",
	}, gw, store, logger)
	c.Notifications = newCollection[Notification](Spec{
		Name: "notification", Key: keyNotifications, Prefix: "ntf",
		Limit: notificationsLimit,
	}, gw, store, logger)

	return &c
}

// Mirror returns the mirror store.
func (c *Client) Mirror() *mirror.Store {
	return c.mirror
}

// Changes returns the change notification bus of the mirror store.
func (c *Client) Changes() core.Bus {
	return c.mirror.Bus()
}

// Session returns the session of the client.
func (c *Client) Session() *Session {
	return c.session
}

// Close releases the resources held by the client.
func (c *Client) Close() error {
	if err := c.storage.Close(); err != nil {
		return fmt.Errorf("close storage: %w", err)
	}
	return nil
}
