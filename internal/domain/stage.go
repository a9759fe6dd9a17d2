package domain

// Stage is the active screen of the checkout flow.
type Stage string

const (
	StageCatalog  Stage = "CATALOG"
	StageDelivery Stage = "DELIVERY"
	StagePayment  Stage = "PAYMENT"
)

func (s Stage) String() string {
	return string(s)
}
