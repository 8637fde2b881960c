package sqldb

import (
	"github.com/rentsoft/property-api/internal/core/domain"
)

func toDomainUser(m *userModel) *domain.User {
	return &domain.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Phone:        m.Phone,
		Role:         domain.Role(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// userSummary returns nil when the association was not loaded.
func userSummary(m *userModel) *domain.UserSummary {
	if m.ID == "" {
		return nil
	}
	return &domain.UserSummary{ID: m.ID, Name: m.Name, Email: m.Email, Phone: m.Phone}
}

func propertySummary(m *propertyModel) *domain.PropertySummary {
	if m.ID == "" {
		return nil
	}
	return &domain.PropertySummary{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		City:      m.City,
		State:     m.State,
		ManagerID: m.ManagerID,
	}
}

func unitSummary(m *unitModel) *domain.UnitSummary {
	if m.ID == "" {
		return nil
	}
	return &domain.UnitSummary{
		ID:          m.ID,
		UnitNumber:  m.UnitNumber,
		Status:      domain.UnitStatus(m.Status),
		MonthlyRent: m.MonthlyRent,
		Property:    propertySummary(&m.Property),
	}
}

func toDomainProperty(m *propertyModel) *domain.Property {
	p := &domain.Property{
		ID:          m.ID,
		Name:        m.Name,
		Type:        domain.PropertyType(m.Type),
		Status:      domain.PropertyStatus(m.Status),
		Address:     m.Address,
		City:        m.City,
		State:       m.State,
		ZipCode:     m.ZipCode,
		Country:     m.Country,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		ManagerID:   m.ManagerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Manager:     userSummary(&m.Manager),
		Units:       make([]domain.UnitSummary, 0, len(m.Units)),
		UnitCount:   int64(len(m.Units)),
		Amenities:   make([]domain.Amenity, 0, len(m.Amenities)),
	}
	for i := range m.Units {
		u := &m.Units[i]
		p.Units = append(p.Units, domain.UnitSummary{
			ID:          u.ID,
			UnitNumber:  u.UnitNumber,
			Status:      domain.UnitStatus(u.Status),
			MonthlyRent: u.MonthlyRent,
		})
	}
	for i := range m.Amenities {
		p.Amenities = append(p.Amenities, *toDomainAmenity(&m.Amenities[i]))
	}
	return p
}

func fromDomainProperty(p *domain.Property) *propertyModel {
	return &propertyModel{
		Base:        Base{ID: p.ID, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt},
		Name:        p.Name,
		Type:        string(p.Type),
		Status:      string(p.Status),
		Address:     p.Address,
		City:        p.City,
		State:       p.State,
		ZipCode:     p.ZipCode,
		Country:     p.Country,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		ManagerID:   p.ManagerID,
	}
}

func toDomainAmenity(m *amenityModel) *domain.Amenity {
	return &domain.Amenity{
		ID:          m.ID,
		PropertyID:  m.PropertyID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func toDomainUnit(m *unitModel) *domain.Unit {
	images := []string(m.ImageURLs)
	if images == nil {
		images = []string{}
	}
	return &domain.Unit{
		ID:              m.ID,
		PropertyID:      m.PropertyID,
		UnitNumber:      m.UnitNumber,
		Bedrooms:        m.Bedrooms,
		Bathrooms:       m.Bathrooms,
		SquareFeet:      m.SquareFeet,
		MonthlyRent:     m.MonthlyRent,
		SecurityDeposit: m.SecurityDeposit,
		Status:          domain.UnitStatus(m.Status),
		Description:     m.Description,
		ImageURLs:       images,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		Property:        propertySummary(&m.Property),
	}
}

func fromDomainUnit(u *domain.Unit) *unitModel {
	return &unitModel{
		Base:            Base{ID: u.ID, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt},
		PropertyID:      u.PropertyID,
		UnitNumber:      u.UnitNumber,
		Bedrooms:        u.Bedrooms,
		Bathrooms:       u.Bathrooms,
		SquareFeet:      u.SquareFeet,
		MonthlyRent:     u.MonthlyRent,
		SecurityDeposit: u.SecurityDeposit,
		Status:          string(u.Status),
		Description:     u.Description,
		ImageURLs:       u.ImageURLs,
	}
}

func toDomainLease(m *leaseModel) *domain.Lease {
	return &domain.Lease{
		ID:              m.ID,
		UnitID:          m.UnitID,
		TenantID:        m.TenantID,
		Status:          domain.LeaseStatus(m.Status),
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		MonthlyRent:     m.MonthlyRent,
		SecurityDeposit: m.SecurityDeposit,
		LateFeeAmount:   m.LateFeeAmount,
		LateFeeDay:      m.LateFeeDay,
		PaymentDueDay:   m.PaymentDueDay,
		Terms:           m.Terms,
		SpecialClauses:  m.SpecialClauses,
		SignedAt:        m.SignedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		Unit:            unitSummary(&m.Unit),
		Tenant:          userSummary(&m.Tenant),
	}
}

func toDomainApplication(m *applicationModel) *domain.Application {
	return &domain.Application{
		ID:               m.ID,
		UnitID:           m.UnitID,
		ApplicantID:      m.ApplicantID,
		Status:           domain.ApplicationStatus(m.Status),
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Email:            m.Email,
		Phone:            m.Phone,
		CurrentAddress:   m.CurrentAddress,
		EmploymentStatus: m.EmploymentStatus,
		Employer:         m.Employer,
		MonthlyIncome:    m.MonthlyIncome,
		MoveInDate:       m.MoveInDate,
		NumOccupants:     m.NumOccupants,
		HasPets:          m.HasPets,
		PetDescription:   m.PetDescription,
		EmergencyContact: m.EmergencyContact,
		EmergencyPhone:   m.EmergencyPhone,
		SubmittedAt:      m.SubmittedAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		Unit:             unitSummary(&m.Unit),
		Applicant:        userSummary(&m.Applicant),
	}
}

func toDomainMaintenance(m *maintenanceModel) *domain.MaintenanceRequest {
	images := []string(m.ImageURLs)
	if images == nil {
		images = []string{}
	}
	return &domain.MaintenanceRequest{
		ID:          m.ID,
		UnitID:      m.UnitID,
		TenantID:    m.TenantID,
		Title:       m.Title,
		Description: m.Description,
		Priority:    domain.Priority(m.Priority),
		Status:      domain.MaintenanceStatus(m.Status),
		Category:    m.Category,
		ImageURLs:   images,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Unit:        unitSummary(&m.Unit),
		Tenant:      userSummary(&m.Tenant),
	}
}

func toDomainPayment(m *paymentModel) *domain.Payment {
	p := &domain.Payment{
		ID:            m.ID,
		LeaseID:       m.LeaseID,
		PayerID:       m.PayerID,
		Amount:        m.Amount,
		Type:          domain.PaymentType(m.Type),
		Status:        domain.PaymentStatus(m.Status),
		DueDate:       m.DueDate,
		PaidDate:      m.PaidDate,
		PaymentMethod: m.PaymentMethod,
		TransactionID: m.TransactionID,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Payer:         userSummary(&m.Payer),
	}
	if m.Lease.ID != "" {
		p.Lease = &domain.LeaseSummary{
			ID:     m.Lease.ID,
			Status: domain.LeaseStatus(m.Lease.Status),
			Unit:   unitSummary(&m.Lease.Unit),
			Tenant: userSummary(&m.Lease.Tenant),
		}
	}
	return p
}
