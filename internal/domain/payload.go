package domain

// ExportSource indica quem disparou a exportação
type ExportSource string

const (
	ExportSourceScheduled ExportSource = "scheduled"
	ExportSourceManual    ExportSource = "manual"
	ExportSourcePreview   ExportSource = "preview"
)

// DigestPayload é o corpo enviado para a API do Render.
// Os nomes dos campos seguem o contrato já consumido pela API.
type DigestPayload struct {
	ExportID           string         `json:"exportId"`
	ExportSource       ExportSource   `json:"exportSource"`
	ExportDate         string         `json:"export_date"`
	Date               string         `json:"date"`
	Period             PeriodInfo     `json:"period"`
	Metrics            Metrics        `json:"metrics"`
	YesterdayInvoices  InvoiceTable   `json:"yesterday_invoices"`
	YesterdayEstimates EstimateTable  `json:"yesterday_estimates"`
	PMTable            []PMOpenRow    `json:"pm_table"`
	BDTable            []BDOpenRow    `json:"bd_table"`
	MTDMetrics         SummaryMetrics `json:"mtd_metrics"`
	YTDMetrics         SummaryMetrics `json:"ytd_metrics"`
	Highlights         []Highlight    `json:"highlights"`
	BDPerformance      []Performance  `json:"bdPerformance"`
	PMPerformance      []Performance  `json:"pmPerformance"`
	BiggestOrder       *BiggestOrder  `json:"biggestOrder"`
	TopPM              *Performance   `json:"topPM"`
	TopBD              *Performance   `json:"topBD"`
	Insights           []InsightBlock `json:"insights"`
	ShownInsights      ShownRecord    `json:"shownInsights"`
}

type PeriodInfo struct {
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	Days              int    `json:"days"`
	IsMultiDayCatchup bool   `json:"isMultiDayCatchup"`
}

type Metrics struct {
	DailyRevenue                float64 `json:"dailyRevenue"`
	DailySalesCount             int     `json:"dailySalesCount"`
	DailyEstimatesCreated       int     `json:"dailyEstimatesCreated"`
	DailyNewCustomers           int     `json:"dailyNewCustomers"`
	MonthToDateRevenue          float64 `json:"monthToDateRevenue"`
	MonthToDateSalesCount       int     `json:"monthToDateSalesCount"`
	MonthToDateEstimatesCreated int     `json:"monthToDateEstimatesCreated"`
	MonthToDateNewCustomers     int     `json:"monthToDateNewCustomers"`
	YearToDateRevenue           float64 `json:"yearToDateRevenue"`
	YearToDateSalesCount        int     `json:"yearToDateSalesCount"`
	YearToDateEstimatesCreated  int     `json:"yearToDateEstimatesCreated"`
	YearToDateNewCustomers      int     `json:"yearToDateNewCustomers"`
}

type InvoiceRow struct {
	InvoiceNumber      string  `json:"invoicenumber"`
	AccountID          int64   `json:"account_id"`
	AccountName        string  `json:"account_name"`
	TakenBy            string  `json:"takenby"`
	SalesRep           string  `json:"salesrep"`
	AdjustedAmountDue  float64 `json:"adjustedamountdue"`
	WebOrderExternalID *string `json:"weborderexternalid"`
	JobDescription     string  `json:"job_description"`
}

type InvoiceTable struct {
	Invoices     []InvoiceRow `json:"invoices"`
	TotalRevenue float64      `json:"total_revenue"`
	InvoiceCount int          `json:"invoice_count"`
}

type EstimateRow struct {
	InvoiceNumber     string  `json:"invoicenumber"`
	AccountID         int64   `json:"account_id"`
	AccountName       string  `json:"account_name"`
	TakenBy           string  `json:"takenby"`
	AdjustedAmountDue float64 `json:"adjustedamountdue"`
	JobDescription    string  `json:"job_description"`
}

type EstimateTable struct {
	EstimateCount int           `json:"estimate_count"`
	TopEstimates  []EstimateRow `json:"top_estimates"`
}

type PMOpenRow struct {
	PMName           string  `json:"pm_name"`
	OpenCount        int     `json:"open_count"`
	OpenTotalDollars float64 `json:"open_total_dollars"`
}

type BDOpenRow struct {
	BDName           string  `json:"bd_name"`
	OpenCount        int     `json:"open_count"`
	OpenTotalDollars float64 `json:"open_total_dollars"`
}

type SummaryMetrics struct {
	Revenue          float64 `json:"revenue"`
	SalesCount       int     `json:"sales_count"`
	EstimatesCreated int     `json:"estimates_created"`
	NewCustomers     int     `json:"new_customers"`
}

// HighlightType diferencia destaques de vendas concluídas e de orçamentos
type HighlightType string

const (
	HighlightInvoice  HighlightType = "invoice"
	HighlightEstimate HighlightType = "estimate"
)

type Highlight struct {
	Type        HighlightType `json:"type"`
	Description string        `json:"description"`
	AccountID   int64         `json:"accountId"`
	AccountName string        `json:"accountName"`
	Amount      float64       `json:"amount"`
}

type Performance struct {
	Name            string  `json:"name"`
	OrdersCompleted int     `json:"ordersCompleted"`
	Revenue         float64 `json:"revenue"`
}

type BiggestOrder struct {
	InvoiceNumber   string  `json:"invoiceNumber"`
	AccountID       int64   `json:"accountId"`
	AccountName     string  `json:"accountName"`
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	FormattedAmount string  `json:"formattedAmount"`
}
