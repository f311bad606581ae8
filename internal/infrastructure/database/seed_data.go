package database

import (
	"github.com/sangkips/laundry-admin/internal/domain/entity"
	"github.com/sangkips/laundry-admin/internal/domain/enum"
)

// Demo dataset written on first start. Every call returns fresh values.

func demoCustomers() []entity.Customer {
	return []entity.Customer{
		{
			ID: "CUST-001", Name: "Suresh Kumar", Mobile: "+91 9876543210",
			LoginMethod: enum.LoginMethodOTP, RegistrationDate: "2023-10-15", LastLogin: "2023-12-01 14:30",
			TotalOrders: 12, TotalClothes: 45, MonthlyBilling: enum.MonthlyBillingOn,
			Email: "suresh.kumar@example.com", Address: "123 Main St, Mumbai",
		},
		{
			ID: "CUST-002", Name: "Priya Sharma", Mobile: "+91 9876543211",
			LoginMethod: enum.LoginMethodEmail, RegistrationDate: "2023-09-22", LastLogin: "2023-12-02 10:15",
			TotalOrders: 8, TotalClothes: 32, MonthlyBilling: enum.MonthlyBillingOff,
			Email: "priya.sharma@example.com", Address: "456 Park Ave, Delhi",
		},
		{
			ID: "CUST-003", Name: "Rahul Patel", Mobile: "+91 9876543212",
			LoginMethod: enum.LoginMethodOTP, RegistrationDate: "2023-11-05", LastLogin: "2023-12-01 16:45",
			TotalOrders: 5, TotalClothes: 18, MonthlyBilling: enum.MonthlyBillingOn,
			Email: "rahul.patel@example.com", Address: "789 Oak St, Bangalore",
		},
		{
			ID: "CUST-004", Name: "Anjali Reddy", Mobile: "+91 9876543213",
			LoginMethod: enum.LoginMethodEmail, RegistrationDate: "2023-08-30", LastLogin: "2023-11-30 09:20",
			TotalOrders: 15, TotalClothes: 62, MonthlyBilling: enum.MonthlyBillingOn,
			Email: "anjali.reddy@example.com", Address: "321 Pine Rd, Chennai",
		},
		{
			ID: "CUST-005", Name: "Vikram Singh", Mobile: "+91 9876543214",
			LoginMethod: enum.LoginMethodOTP, RegistrationDate: "2023-10-28", LastLogin: "2023-12-02 18:10",
			TotalOrders: 3, TotalClothes: 11, MonthlyBilling: enum.MonthlyBillingOff,
			Email: "vikram.singh@example.com", Address: "654 Maple St, Kolkata",
		},
	}
}

func demoOrders() []entity.Order {
	orders := []entity.Order{
		{
			OrderID: "ORD-2409-001", CustomerName: "Suresh Kumar", CustomerID: "CUST-001",
			OrderSource: enum.OrderSourceCustomerApp, OrderDate: "2023-12-01 10:30",
			Status: enum.OrderStatusProcessing, PaymentType: "Cash on Delivery", PaymentStatus: "Unpaid",
			PickupAddress: "123 Main St, Mumbai", DeliveryAddress: "123 Main St, Mumbai",
			PreferredDelivery: "2023-12-03",
			Items: []entity.Item{
				{ItemID: "ITEM-2409-001", Category: "Men's Wear", SubCategory: "Shirt", Notes: "Collar stain", Price: 80},
				{ItemID: "ITEM-2409-002", Category: "Men's Wear", SubCategory: "Shirt", Notes: "Normal", Price: 80},
				{ItemID: "ITEM-2409-003", Category: "Men's Wear", SubCategory: "Trouser", Notes: "Wash & Iron", Price: 120},
				{ItemID: "ITEM-2409-004", Category: "Men's Wear", SubCategory: "Blazer", Notes: "Dry Clean", Price: 150},
				{ItemID: "ITEM-2409-005", Category: "Household", SubCategory: "Bedsheet", Notes: "Double bed", Price: 120},
			},
		},
		{
			OrderID: "ORD-2409-002", CustomerName: "Priya Sharma", CustomerID: "CUST-002",
			OrderSource: enum.OrderSourceDeliveryApp, OrderDate: "2023-12-01 14:15",
			Status: enum.OrderStatusPickedUp, PaymentType: "Online", PaymentStatus: "Paid",
			PickupAddress: "456 Park Ave, Delhi", DeliveryAddress: "456 Park Ave, Delhi",
			PreferredDelivery: "2023-12-02",
			DeliveryPerson:    &entity.DeliveryAssignment{ID: "DP-001", Name: "Raj Kumar", Mobile: "+91 9876543290"},
			Items: []entity.Item{
				{ItemID: "ITEM-2409-006", Category: "Women's Wear", SubCategory: "Saree", Notes: "Silk", Price: 150},
				{ItemID: "ITEM-2409-007", Category: "Women's Wear", SubCategory: "Kurti", Notes: "Cotton", Price: 90},
				{ItemID: "ITEM-2409-008", Category: "Women's Wear", SubCategory: "Dress", Notes: "Party wear", Price: 150},
			},
		},
		{
			OrderID: "ORD-2409-003", CustomerName: "Rahul Patel", CustomerID: "CUST-003",
			OrderSource: enum.OrderSourceCustomerApp, OrderDate: "2023-11-30 09:45",
			Status: enum.OrderStatusReady, PaymentType: "Monthly Billing", PaymentStatus: "Pending",
			PickupAddress: "789 Oak St, Bangalore", DeliveryAddress: "789 Oak St, Bangalore",
			PreferredDelivery: "2023-12-01",
			Items: []entity.Item{
				{ItemID: "ITEM-2409-009", Category: "Men's Wear", SubCategory: "Shirt", Notes: "Normal", Price: 80},
				{ItemID: "ITEM-2409-010", Category: "Men's Wear", SubCategory: "Jeans", Notes: "Dark wash", Price: 100},
				{ItemID: "ITEM-2409-011", Category: "Men's Wear", SubCategory: "Jacket", Notes: "Winter", Price: 120},
				{ItemID: "ITEM-2409-012", Category: "Wash & Iron", SubCategory: "Regular", Notes: "Normal load", Price: 20},
			},
		},
	}
	for i := range orders {
		orders[i].Recalculate()
	}
	return orders
}

func demoMonthlyBills() []entity.MonthlyBill {
	bills := []entity.MonthlyBill{
		{
			BillID: "BILL-2023-11", CustomerID: "CUST-001", CustomerName: "Suresh Kumar",
			Mobile: "+91 9876543210", CompanyName: "Suresh Enterprises", Month: "November 2023",
			Status: enum.BillStatusPaid,
			Orders: []string{"ORD-2311-001", "ORD-2311-002", "ORD-2311-003"},
			ItemDetails: []entity.BillLine{
				{ItemID: "ITEM-2311-001", OrderID: "ORD-2311-001", Category: "Men's Wear", SubCategory: "Shirt", Price: 80},
				{ItemID: "ITEM-2311-002", OrderID: "ORD-2311-001", Category: "Men's Wear", SubCategory: "Trouser", Price: 120},
			},
			CreatedAt: "2023-11-30", DueDate: "2023-12-10",
		},
		{
			BillID: "BILL-2023-10", CustomerID: "CUST-002", CustomerName: "Priya Sharma",
			Mobile: "+91 9876543211", CompanyName: "Priya Fashion House", Month: "October 2023",
			Status: enum.BillStatusPending,
			Orders: []string{"ORD-2310-001", "ORD-2310-002"},
			ItemDetails: []entity.BillLine{
				{ItemID: "ITEM-2310-001", OrderID: "ORD-2310-001", Category: "Women's Wear", SubCategory: "Saree", Price: 150},
				{ItemID: "ITEM-2310-002", OrderID: "ORD-2310-001", Category: "Women's Wear", SubCategory: "Kurti", Price: 90},
			},
			CreatedAt: "2023-10-31", DueDate: "2023-11-10",
		},
	}
	for i := range bills {
		bills[i].Recalculate()
	}
	return bills
}

func demoDeliveryPersons() []entity.DeliveryPerson {
	return []entity.DeliveryPerson{
		{ID: "DP-001", Name: "Raj Kumar", Mobile: "+91 9876543290", TotalOrders: 45, TotalClothes: 210,
			Status: enum.PersonStatusActive, JoinDate: "2023-08-15"},
		{ID: "DP-002", Name: "Amit Singh", Mobile: "+91 9876543291", TotalOrders: 38, TotalClothes: 185,
			Status: enum.PersonStatusActive, JoinDate: "2023-09-01"},
	}
}

func demoCategories() entity.CategoryTree {
	return entity.CategoryTree{
		"Men's Wear":   {"Shirt", "Trouser", "Jeans", "Blazer", "Jacket", "T-shirt", "Shorts"},
		"Women's Wear": {"Saree", "Kurti", "Dress", "Blouse", "Skirt", "Top", "Lehenga"},
		"Kids Wear":    {"T-shirt", "Shorts", "Dress", "School Uniform", "Sweater"},
		"Household":    {"Bedsheet", "Curtain", "Table cloth", "Towel", "Blanket"},
		"Steam":        {"Suit", "Coat", "Dress Material", "Formal Wear"},
		"Wash & Iron":  {"Regular", "Express", "Bulk"},
		"Other":        {"Bag", "Shoes", "Cap", "Accessories"},
	}
}

func demoCategoryPrices() entity.PriceMap {
	return entity.PriceMap{
		"Shirt":    80,
		"Trouser":  120,
		"Saree":    150,
		"Kurti":    90,
		"Bedsheet": 120,
		"Curtain":  180,
		"Suit":     150,
		"Regular":  20,
		"Bag":      200,
	}
}

func demoStats() entity.Stats {
	return entity.Stats{
		TotalCustomers:          156,
		TotalOrders:             342,
		TotalClothes:            1287,
		DeliveredOrders:         298,
		PendingPayments:         44,
		MonthlyBillingCustomers: 38,
	}
}
