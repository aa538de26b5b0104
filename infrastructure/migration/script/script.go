package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/subscription-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/subscription-reports-api/infrastructure/repository"
	"github.com/vfg2006/subscription-reports-api/internal/config"
	"github.com/vfg2006/subscription-reports-api/internal/domain"
	"github.com/vfg2006/subscription-reports-api/pkg/log"
	"github.com/vfg2006/subscription-reports-api/pkg/utils"
)

const schema = `
CREATE TABLE IF NOT EXISTS plan_groups (
	id         TEXT PRIMARY KEY,
	number     INTEGER NOT NULL DEFAULT 0,
	name       TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS items (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	type       TEXT NOT NULL,
	status     TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS prices (
	id                TEXT PRIMARY KEY,
	item_id           TEXT REFERENCES items (id),
	description       TEXT,
	unit_amount       TEXT,
	currency_code     TEXT,
	billing_interval  TEXT,
	billing_frequency INTEGER,
	glt_key           TEXT,
	group_id          TEXT REFERENCES plan_groups (id),
	level             INTEGER,
	tier              TEXT,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS customers (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL DEFAULT '',
	email      TEXT NOT NULL DEFAULT '',
	status     TEXT NOT NULL DEFAULT 'active',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS subscriptions (
	id                TEXT PRIMARY KEY,
	customer_id       TEXT NOT NULL REFERENCES customers (id),
	status            TEXT NOT NULL,
	started_at        TIMESTAMPTZ,
	canceled_at       TIMESTAMPTZ,
	billing_interval  TEXT NOT NULL DEFAULT 'month',
	billing_frequency INTEGER NOT NULL DEFAULT 1,
	price_id          TEXT REFERENCES prices (id),
	glt_key           TEXT,
	group_id          TEXT REFERENCES plan_groups (id),
	level             INTEGER,
	tier              TEXT,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_subscriptions_started_at ON subscriptions (started_at);
CREATE INDEX IF NOT EXISTS idx_subscriptions_group_id ON subscriptions (group_id);

CREATE TABLE IF NOT EXISTS transactions (
	id              TEXT PRIMARY KEY,
	subscription_id TEXT REFERENCES subscriptions (id),
	customer_id     TEXT NOT NULL REFERENCES customers (id),
	status          TEXT NOT NULL,
	billed_at       TIMESTAMPTZ,
	earnings        TEXT,
	total           TEXT,
	currency_code   TEXT,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_transactions_subscription_billed ON transactions (subscription_id, billed_at);
CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions (status);

CREATE TABLE IF NOT EXISTS transaction_line_items (
	id             TEXT PRIMARY KEY,
	transaction_id TEXT NOT NULL REFERENCES transactions (id),
	price_id       TEXT REFERENCES prices (id),
	quantity       INTEGER NOT NULL DEFAULT 1,
	total          TEXT,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS report_snapshots (
	id         TEXT PRIMARY KEY,
	report     TEXT NOT NULL,
	period     TEXT NOT NULL,
	payload    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (report, period)
);

CREATE TABLE IF NOT EXISTS users (
	id            SERIAL PRIMARY KEY,
	name          TEXT NOT NULL,
	lastname      TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	active        BOOLEAN NOT NULL DEFAULT TRUE,
	role_id       INTEGER NOT NULL DEFAULT 3,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

type seedRepositories struct {
	catalog       repository.CatalogRepository
	planGroups    repository.PlanGroupRepository
	customers     repository.CustomerRepository
	subscriptions repository.SubscriptionRepository
	transactions  repository.TransactionRepository
	lineItems     repository.LineItemRepository
	users         repository.UserRepository
}

func main() {
	log.Configure("info")
	log.L.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	started := time.Now()
	err = conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		_, err := q.ExecContext(ctx, schema)
		return err
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar as tabelas")
	}
	log.L.Infof("Tabelas criadas em %v", time.Since(started))

	repos := seedRepositories{
		catalog:       repository.NewCatalogRepository(conn),
		planGroups:    repository.NewPlanGroupRepository(conn),
		customers:     repository.NewCustomerRepository(conn),
		subscriptions: repository.NewSubscriptionRepository(conn),
		transactions:  repository.NewTransactionRepository(conn),
		lineItems:     repository.NewLineItemRepository(conn),
		users:         repository.NewUserRepository(conn),
	}

	if err := seedAdmin(ctx, repos.users); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar usuário administrador")
	}

	count, err := repos.customers.CountCustomers(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao contar clientes")
	}
	if count > 0 {
		log.L.Infof("Base já possui %d clientes, dados de demonstração não serão inseridos", count)
		return
	}

	if err := seedDemo(ctx, repos, time.Now().UTC()); err != nil {
		logrus.WithError(err).Fatal("Erro ao inserir dados de demonstração")
	}

	log.L.Infof("Migração concluída em %v", time.Since(started))
}

func seedAdmin(ctx context.Context, users repository.UserRepository) error {
	email := envOr("SEED_ADMIN_EMAIL", "admin@example.com")

	existing, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		log.L.WithField("email", email).Info("Administrador já cadastrado")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(envOr("SEED_ADMIN_PASSWORD", "Admin@12345")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = users.CreateUser(ctx, &domain.User{
		Name:         "Admin",
		Lastname:     "Reports",
		Email:        email,
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       domain.RoleAdmin,
	})
	if err == nil {
		log.L.WithField("email", email).Info("Administrador criado")
	}
	return err
}

// seedDemo grava um catálogo com dois grupos de planos e doze meses de assinaturas e cobranças
func seedDemo(ctx context.Context, repos seedRepositories, now time.Time) error {
	groups := []*domain.PlanGroup{
		{ID: "grp_" + utils.MustGenerateID(), Number: 1, Name: "Essencial"},
		{ID: "grp_" + utils.MustGenerateID(), Number: 2, Name: "Profissional"},
	}

	planItem := &domain.Item{ID: "pro_" + utils.MustGenerateID(), Name: "Plano de assinatura", Type: domain.ItemTypeSubscription, Status: "active"}
	onboarding := &domain.Item{ID: "pro_" + utils.MustGenerateID(), Name: "Onboarding assistido", Type: domain.ItemTypeService, Status: "active"}
	kit := &domain.Item{ID: "pro_" + utils.MustGenerateID(), Name: "Kit de boas-vindas", Type: domain.ItemTypeProduct, Status: "active"}
	items := []*domain.Item{planItem, onboarding, kit}

	type tierSpec struct {
		group  *domain.PlanGroup
		level  int
		tier   string
		amount int64
	}
	specs := []tierSpec{
		{groups[0], 1, "T1", 1990},
		{groups[0], 2, "T2", 3990},
		{groups[1], 1, "T1", 9990},
		{groups[1], 2, "T0", 0},
	}

	plans := make([]*domain.Price, 0, len(specs))
	for _, s := range specs {
		amount := s.amount
		plan := domain.PlanClassification{GroupID: s.group.ID, GroupNumber: s.group.Number, GroupName: s.group.Name, Level: s.level, Tier: s.tier}
		plan.GLTKey = plan.Key()
		plans = append(plans, &domain.Price{
			ID:               "pri_" + utils.MustGenerateID(),
			ItemID:           planItem.ID,
			Description:      s.group.Name + " " + plan.GLTKey,
			UnitAmount:       &amount,
			CurrencyCode:     "USD",
			BillingInterval:  "month",
			BillingFrequency: 1,
			Plan:             plan,
		})
	}

	onboardingAmount, kitAmount := int64(15000), int64(4500)
	onboardingPrice := &domain.Price{ID: "pri_" + utils.MustGenerateID(), ItemID: onboarding.ID, Description: "Onboarding", UnitAmount: &onboardingAmount, CurrencyCode: "USD"}
	kitPrice := &domain.Price{ID: "pri_" + utils.MustGenerateID(), ItemID: kit.ID, Description: "Kit", UnitAmount: &kitAmount, CurrencyCode: "USD"}
	prices := append(append([]*domain.Price{}, plans...), onboardingPrice, kitPrice)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var (
		customers     []*domain.Customer
		subscriptions []*domain.Subscription
		transactions  []*domain.Transaction
		lineItems     []*domain.TransactionLineItem
	)

	for i := 0; i < 24; i++ {
		customer := &domain.Customer{
			ID:     "ctm_" + utils.MustGenerateID(),
			Name:   "Cliente " + utils.MustGenerateID()[:4],
			Email:  "cliente" + utils.MustGenerateID()[:6] + "@example.com",
			Status: "active",
		}
		customers = append(customers, customer)

		price := plans[i%len(plans)]
		started := monthStart.AddDate(0, -(i % 12), 3+i%20)
		if started.After(now) {
			started = monthStart
		}

		sub := &domain.Subscription{
			ID:               "sub_" + utils.MustGenerateID(),
			CustomerID:       customer.ID,
			Status:           domain.SubscriptionStatusActive,
			StartedAt:        &started,
			BillingInterval:  "month",
			BillingFrequency: 1,
			PriceID:          price.ID,
			Plan:             price.Plan,
		}

		end := now
		if i%5 == 0 && i > 0 {
			canceled := started.AddDate(0, 2, 0)
			if canceled.Before(now) {
				sub.Status = domain.SubscriptionStatusCanceled
				sub.CanceledAt = &canceled
				end = canceled
			}
		}
		subscriptions = append(subscriptions, sub)

		for billed := started; billed.Before(end); billed = billed.AddDate(0, 1, 0) {
			txn := paidTransaction(customer.ID, &sub.ID, billed, *price.UnitAmount)
			transactions = append(transactions, txn)
			lineItems = append(lineItems, lineItem(txn, price.ID, 1, *price.UnitAmount))
		}

		if i%4 == 0 {
			billed := started.Add(time.Hour)
			txn := paidTransaction(customer.ID, nil, billed, onboardingAmount+2*kitAmount)
			transactions = append(transactions, txn)
			lineItems = append(lineItems,
				lineItem(txn, onboardingPrice.ID, 1, onboardingAmount),
				lineItem(txn, kitPrice.ID, 2, 2*kitAmount),
			)
		}
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{"itens", func() error { return repos.catalog.SaveOrUpdateItems(ctx, items) }},
		{"grupos de planos", func() error { return repos.planGroups.SaveOrUpdate(ctx, groups) }},
		{"preços", func() error { return repos.catalog.SaveOrUpdatePrices(ctx, prices) }},
		{"clientes", func() error { return repos.customers.SaveOrUpdate(ctx, customers) }},
		{"assinaturas", func() error { return repos.subscriptions.SaveOrUpdate(ctx, subscriptions) }},
		{"transações", func() error { return repos.transactions.SaveOrUpdate(ctx, transactions) }},
		{"itens de transação", func() error { return repos.lineItems.SaveOrUpdate(ctx, lineItems) }},
	}

	for _, step := range steps {
		started := time.Now()
		if err := step.fn(); err != nil {
			log.L.WithError(err).WithField("step", step.name).Error("Falha ao inserir dados de demonstração")
			return err
		}
		log.L.WithFields(log.Fields{"step": step.name, "elapsed": time.Since(started).String()}).Info("Dados de demonstração inseridos")
	}

	return nil
}

func paidTransaction(customerID string, subscriptionID *string, billed time.Time, total int64) *domain.Transaction {
	billedAt := billed
	earnings := total * 95 / 100
	return &domain.Transaction{
		ID:             "txn_" + utils.MustGenerateID(),
		SubscriptionID: subscriptionID,
		CustomerID:     customerID,
		Status:         domain.TransactionStatusPaid,
		BilledAt:       &billedAt,
		Earnings:       &earnings,
		Total:          &total,
		CurrencyCode:   "USD",
	}
}

func lineItem(txn *domain.Transaction, priceID string, quantity int, total int64) *domain.TransactionLineItem {
	return &domain.TransactionLineItem{
		ID:            "txnitm_" + utils.MustGenerateID(),
		TransactionID: txn.ID,
		CustomerID:    txn.CustomerID,
		PriceID:       priceID,
		Quantity:      quantity,
		Total:         &total,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
