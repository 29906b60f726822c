package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	payos "github.com/payOSHQ/payos-lib-golang"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "comicvault/internal/models/db_models"
	"comicvault/internal/models/response_models"
	"comicvault/internal/repositories"
	"comicvault/pkg/utils"
)

type PayOSConfig struct {
	ClientID     string
	ApiKey       string
	ChecksumKey  string // secret used to sign webhooks
	ReturnURL    string
	CancelURL    string
	ProviderName string // "payos" (stored on Transaction.Provider)
}

type PaymentService interface {
	ListPlans(ctx context.Context) ([]dbm.Plan, error)
	CreateCheckoutForPlan(ctx context.Context, accountID uuid.UUID, planCode string) (*response_models.CreateCheckoutResponse, error)
	HandleWebhook(c *gin.Context)
}

type paymentService struct {
	db       *gorm.DB
	planRepo repositories.IPlanRepository
	cfg      PayOSConfig
}

func NewPaymentService(db *gorm.DB, planRepo repositories.IPlanRepository, cfg PayOSConfig) (PaymentService, error) {
	if cfg.ClientID == "" || cfg.ApiKey == "" || cfg.ChecksumKey == "" {
		return nil, errors.New("missing payOS credentials")
	}

	return &paymentService{
		db:       db,
		planRepo: planRepo,
		cfg:      cfg,
	}, nil
}

func (p *paymentService) ListPlans(ctx context.Context) ([]dbm.Plan, error) {
	return p.planRepo.ListActive(ctx)
}

func (p *paymentService) CreateCheckoutForPlan(ctx context.Context, accountID uuid.UUID, planCode string) (*response_models.CreateCheckoutResponse, error) {
	planPtr, err := p.planRepo.FindActiveByCode(ctx, planCode)
	if err != nil {
		return nil, err
	}
	if planPtr == nil {
		return nil, utils.ErrPlanNotFound
	}
	plan := *planPtr

	amount := plan.PriceMinor
	if amount <= 0 {
		return nil, fmt.Errorf("plan %s is not billable (amount=%d)", planCode, amount)
	}

	// payOS expects an int64 order code; unix seconds plus a short random
	// suffix keeps collisions unlikely.
	orderCode := time.Now().Unix()%1_000_000_000 + int64(rand.Intn(9000)+1000)

	planID := plan.ID
	txn := &dbm.Transaction{
		AccountID:     accountID,
		PlanID:        &planID,
		AmountMinor:   amount,
		Currency:      strings.ToUpper(plan.Currency),
		Status:        dbm.TxnStatusPending,
		Provider:      p.cfg.ProviderName,
		ProviderTxnID: fmt.Sprintf("payos:%d", orderCode),
	}

	if err := p.db.WithContext(ctx).Create(txn).Error; err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	item := payos.Item{
		Name:     fmt.Sprintf("%s (%s)", plan.Name, plan.Code),
		Price:    int(amount),
		Quantity: 1,
	}

	body := payos.CheckoutRequestType{
		OrderCode:   orderCode,
		Amount:      int(amount),
		Items:       []payos.Item{item},
		Description: fmt.Sprintf("Comic Vault %s", plan.Code),
		CancelUrl:   p.cfg.CancelURL,
		ReturnUrl:   p.cfg.ReturnURL,
	}

	if err := payos.Key(p.cfg.ClientID, p.cfg.ApiKey, p.cfg.ChecksumKey); err != nil {
		return nil, fmt.Errorf("payos client init: %w", err)
	}

	resp, err := payos.CreatePaymentLink(body)
	if err != nil {
		_ = p.db.WithContext(ctx).Model(txn).
			Update("status", dbm.TxnStatusFailed).Error
		return nil, fmt.Errorf("payos create link: %w", err)
	}

	meta := map[string]any{
		"payos_link": resp,
		"plan_id":    plan.ID,
		"plan_code":  plan.Code,
	}
	if bytes, _ := json.Marshal(meta); bytes != nil {
		_ = p.db.WithContext(ctx).Model(txn).Update("metadata", bytes).Error
	}

	return &response_models.CreateCheckoutResponse{
		OrderCode:    orderCode,
		Amount:       amount,
		PaymentURL:   resp.CheckoutUrl,
		ProviderName: p.cfg.ProviderName,
	}, nil
}

func (p *paymentService) HandleWebhook(c *gin.Context) {
	if err := payos.Key(p.cfg.ClientID, p.cfg.ApiKey, p.cfg.ChecksumKey); err != nil {
		log.Printf("Error setting payos key: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment provider misconfigured"})
		return
	}

	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("Error reading request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	var body payos.WebhookType
	if err := json.Unmarshal(rawBody, &body); err != nil {
		log.Printf("Error parsing webhook data: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
		return
	}

	data, payosErr := payos.VerifyPaymentWebhookData(body)
	if payosErr != nil {
		log.Printf("Error verifying webhook data: %v", payosErr)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to verify webhook data"})
		return
	}

	orderCode := data.OrderCode
	providerTxn := fmt.Sprintf("payos:%d", orderCode)

	var txn dbm.Transaction
	if err := p.db.
		Where("provider_txn_id = ?", providerTxn).
		First(&txn).Error; err != nil {
		// Ack with 200 to avoid a retry storm, but log for investigation.
		log.Printf("webhook: transaction not found for order %d", orderCode)
		c.JSON(http.StatusOK, gin.H{"message": "ignored"})
		return
	}

	// Idempotency: apply only if not already paid.
	if txn.Status != dbm.TxnStatusPaid {
		now := time.Now().Unix()
		err = p.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&txn).Updates(map[string]interface{}{
				"status":  dbm.TxnStatusPaid,
				"paid_at": now,
			}).Error; err != nil {
				return err
			}
			return p.applyPurchase(tx, &txn)
		})
		if err != nil {
			log.Printf("webhook: failed to apply purchase for order %d: %v", orderCode, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transaction"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// applyPurchase grants what the paid plan sells: a tier plan moves the account
// onto its tier, a scan pack tops up one-time credits. Runs inside the webhook
// transaction.
func (p *paymentService) applyPurchase(tx *gorm.DB, txn *dbm.Transaction) error {
	if txn.PlanID == nil {
		return fmt.Errorf("transaction %s has no plan", txn.ID)
	}

	var plan dbm.Plan
	if err := tx.Where("id = ?", *txn.PlanID).First(&plan).Error; err != nil {
		return fmt.Errorf("plan not found while applying purchase: %w", err)
	}

	switch plan.Kind {
	case dbm.PlanKindTier:
		var account dbm.Account
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&account, "id = ?", txn.AccountID).Error; err != nil {
			return fmt.Errorf("account not found while applying purchase: %w", err)
		}

		now := time.Now()
		expires := now.AddDate(0, 0, int(plan.DurationDays)).Unix()
		account.ApplyTierChange(plan.GrantsTier, &expires, now)
		return tx.Save(&account).Error

	case dbm.PlanKindScanPack:
		res := tx.Model(&dbm.Account{}).
			Where("id = ?", txn.AccountID).
			Update("one_time_scans", gorm.Expr("one_time_scans + ?", plan.ScanCredits))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("account %s not found while crediting scan pack", txn.AccountID)
		}
		return nil

	default:
		return fmt.Errorf("unknown plan kind %q", plan.Kind)
	}
}
