package domain

// Urgency tiers for a blood request. Display only, never used for ordering.
const (
	UrgencyCritical = "Critical"
	UrgencyUrgent   = "Urgent"
	UrgencyActive   = "Active"
	UrgencyNormal   = "Normal"
)

// Donation history states. A row moves Scheduled -> Completed exactly once.
const (
	HistoryScheduled = "Scheduled"
	HistoryCompleted = "Completed"
)

// Activity feed entry kinds.
const (
	ActivityRequest  = "request"
	ActivityDonation = "donation"
	ActivitySystem   = "system"
)

const (
	DefaultDonationAmount = "350ml"
	DonationType          = "Donation"
	DefaultDistance       = "Calculating..."
	DonorAvailable        = "Available"

	// LivesSavedPerDonation is the fixed multiplier used by donor stats.
	LivesSavedPerDonation = 3
)

// BloodTypes lists the ABO/Rh groups accepted by requests, donors and inventory.
var BloodTypes = []string{"O-", "O+", "A-", "A+", "B-", "B+", "AB-", "AB+"}

type Location struct {
	Lat float64 `db:"lat" json:"lat"`
	Lng float64 `db:"lng" json:"lng"`
}

type Donor struct {
	ID           int64    `db:"id" json:"id"`
	Name         string   `db:"name" json:"name"`
	BloodType    string   `db:"blood_type" json:"bloodType"`
	Location     Location `db:"location" json:"location"`
	Donations    int      `db:"donations" json:"donations"`
	Status       string   `db:"status" json:"status"`
	LastDonation string   `db:"last_donation" json:"lastDonation"`
	City         string   `db:"city" json:"city"`
}

type Request struct {
	ID        int64  `db:"id" json:"id"`
	Hospital  string `db:"hospital" json:"hospital"`
	BloodType string `db:"blood_type" json:"bloodType"`
	Units     int    `db:"units" json:"units"`
	Collected int    `db:"collected" json:"collected"`
	Urgency   string `db:"urgency" json:"urgency"`
	Reason    string `db:"reason" json:"reason"`
	Distance  string `db:"distance" json:"distance"`
	Time      string `db:"-" json:"time"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}

// Open reports whether the request still needs units.
func (r Request) Open() bool { return r.Collected < r.Units }

type DonationHistory struct {
	ID          int64  `db:"id" json:"id"`
	DonorID     int64  `db:"donor_id" json:"donorId"`
	RequestID   int64  `db:"request_id" json:"requestId"`
	Hospital    string `db:"hospital" json:"hospital"`
	BloodType   string `db:"blood_type" json:"bloodType"`
	Date        string `db:"date" json:"date"`
	Amount      string `db:"amount" json:"amount"`
	Type        string `db:"type" json:"type"`
	Status      string `db:"status" json:"status"`
	CompletedAt string `db:"completed_at" json:"completedAt,omitempty"`
}

type ActivityEntry struct {
	ID        int64  `db:"id" json:"id"`
	User      string `db:"user_name" json:"user"`
	Action    string `db:"action" json:"action"`
	Type      string `db:"type" json:"type"`
	Time      string `db:"-" json:"time"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}

type DonorStats struct {
	DonorID      int64  `json:"donorId,omitempty"`
	Donations    int    `json:"donations"`
	Scheduled    int    `json:"scheduled"`
	LivesSaved   int    `json:"livesSaved"`
	LastDonation string `json:"lastDonation,omitempty"`
}

type HospitalStats struct {
	ActiveRequests     int `json:"activeRequests"`
	TotalRequests      int `json:"totalRequests"`
	DonorsResponded    int `json:"donorsResponded"`
	CompletedDonations int `json:"completedDonations"`
	UnitsCollected     int `json:"unitsCollected"`
}

type Stats struct {
	DonorStats    DonorStats    `json:"donorStats"`
	HospitalStats HospitalStats `json:"hospitalStats"`
}
