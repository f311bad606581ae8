package entity

import "github.com/sangkips/laundry-admin/internal/domain/enum"

// Customer is created by the mobile app on first login. The admin only
// toggles monthly billing or edits contact details; customers are never
// deleted.
type Customer struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Mobile           string              `json:"mobile"`
	LoginMethod      enum.LoginMethod    `json:"loginMethod"`
	RegistrationDate string              `json:"registrationDate"`
	LastLogin        string              `json:"lastLogin"`
	TotalOrders      int                 `json:"totalOrders"`
	TotalClothes     int                 `json:"totalClothes"`
	MonthlyBilling   enum.MonthlyBilling `json:"monthlyBilling"`
	Email            string              `json:"email"`
	Address          string              `json:"address"`
}

// DeliveryPerson is read-only from the admin side
type DeliveryPerson struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Mobile       string            `json:"mobile"`
	TotalOrders  int               `json:"totalOrders"`
	TotalClothes int               `json:"totalClothes"`
	Status       enum.PersonStatus `json:"status"`
	JoinDate     string            `json:"joinDate"`
}
