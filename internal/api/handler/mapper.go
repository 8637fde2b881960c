package handler

import (
	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreatePropertyInput(req createPropertyRequest) ports.CreatePropertyInput {
	return ports.CreatePropertyInput{
		Name:        req.Name,
		Type:        domain.PropertyType(req.Type),
		Status:      domain.PropertyStatus(req.Status),
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Country:     req.Country,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ManagerID:   req.ManagerID,
	}
}

func toUpdatePropertyInput(req updatePropertyRequest) ports.UpdatePropertyInput {
	in := ports.UpdatePropertyInput{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Country:     req.Country,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if req.Type != nil {
		t := domain.PropertyType(*req.Type)
		in.Type = &t
	}
	if req.Status != nil {
		s := domain.PropertyStatus(*req.Status)
		in.Status = &s
	}
	return in
}

func toCreateUnitInput(req createUnitRequest) ports.CreateUnitInput {
	return ports.CreateUnitInput{
		PropertyID:      req.PropertyID,
		UnitNumber:      req.UnitNumber,
		Bedrooms:        req.Bedrooms,
		Bathrooms:       req.Bathrooms,
		SquareFeet:      req.SquareFeet,
		MonthlyRent:     req.MonthlyRent,
		SecurityDeposit: req.SecurityDeposit,
		Status:          domain.UnitStatus(req.Status),
		Description:     req.Description,
		ImageURLs:       req.ImageURLs,
	}
}

func toUpdateUnitInput(req updateUnitRequest) ports.UpdateUnitInput {
	in := ports.UpdateUnitInput{
		UnitNumber:      req.UnitNumber,
		Bedrooms:        req.Bedrooms,
		Bathrooms:       req.Bathrooms,
		SquareFeet:      req.SquareFeet,
		MonthlyRent:     req.MonthlyRent,
		SecurityDeposit: req.SecurityDeposit,
		Description:     req.Description,
		ImageURLs:       req.ImageURLs,
	}
	if req.Status != nil {
		s := domain.UnitStatus(*req.Status)
		in.Status = &s
	}
	return in
}

func toCreateLeaseInput(req createLeaseRequest) ports.CreateLeaseInput {
	return ports.CreateLeaseInput{
		UnitID:          req.UnitID,
		TenantID:        req.TenantID,
		Status:          domain.LeaseStatus(req.Status),
		StartDate:       req.StartDate.Time,
		EndDate:         req.EndDate.Time,
		MonthlyRent:     req.MonthlyRent,
		SecurityDeposit: req.SecurityDeposit,
		LateFeeAmount:   req.LateFeeAmount,
		LateFeeDay:      req.LateFeeDay,
		PaymentDueDay:   req.PaymentDueDay,
		Terms:           req.Terms,
		SpecialClauses:  req.SpecialClauses,
		SignedAt:        req.SignedAt.ptr(),
	}
}

func toCreateApplicationInput(req createApplicationRequest) ports.CreateApplicationInput {
	return ports.CreateApplicationInput{
		UnitID:           req.UnitID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		CurrentAddress:   req.CurrentAddress,
		EmploymentStatus: req.EmploymentStatus,
		Employer:         req.Employer,
		MonthlyIncome:    req.MonthlyIncome,
		MoveInDate:       req.MoveInDate.ptr(),
		NumOccupants:     req.NumOccupants,
		HasPets:          req.HasPets,
		PetDescription:   req.PetDescription,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
	}
}

func toCreateMaintenanceInput(req createMaintenanceRequest) ports.CreateMaintenanceInput {
	return ports.CreateMaintenanceInput{
		UnitID:      req.UnitID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.Priority(req.Priority),
		Category:    req.Category,
		ImageURLs:   req.ImageURLs,
	}
}

func toCreatePaymentInput(req createPaymentRequest) ports.CreatePaymentInput {
	return ports.CreatePaymentInput{
		LeaseID:       req.LeaseID,
		Amount:        req.Amount,
		Type:          domain.PaymentType(req.Type),
		Status:        domain.PaymentStatus(req.Status),
		DueDate:       req.DueDate.Time,
		PaidDate:      req.PaidDate.ptr(),
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		Notes:         req.Notes,
	}
}

// --- Domain → Response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserSummary(s *domain.UserSummary) *userSummaryResponse {
	if s == nil {
		return nil
	}
	return &userSummaryResponse{ID: s.ID, Name: s.Name, Email: s.Email, Phone: s.Phone}
}

func toPropertySummary(s *domain.PropertySummary) *propertySummaryResponse {
	if s == nil {
		return nil
	}
	return &propertySummaryResponse{ID: s.ID, Name: s.Name, Address: s.Address, City: s.City, State: s.State}
}

func toUnitSummary(s *domain.UnitSummary) *unitSummaryResponse {
	if s == nil {
		return nil
	}
	return &unitSummaryResponse{
		ID:          s.ID,
		UnitNumber:  s.UnitNumber,
		Status:      string(s.Status),
		MonthlyRent: s.MonthlyRent,
		Property:    toPropertySummary(s.Property),
	}
}

func toLeaseSummary(s *domain.LeaseSummary) *leaseSummaryResponse {
	if s == nil {
		return nil
	}
	return &leaseSummaryResponse{
		ID:     s.ID,
		Status: string(s.Status),
		Unit:   toUnitSummary(s.Unit),
		Tenant: toUserSummary(s.Tenant),
	}
}

func toAmenityResponse(a domain.Amenity) amenityResponse {
	return amenityResponse{
		ID:          a.ID,
		PropertyID:  a.PropertyID,
		Name:        a.Name,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
	}
}

func toPropertyResponse(p *domain.Property) propertyResponse {
	units := make([]unitSummaryResponse, 0, len(p.Units))
	for i := range p.Units {
		units = append(units, *toUnitSummary(&p.Units[i]))
	}
	var amenities []amenityResponse
	for _, a := range p.Amenities {
		amenities = append(amenities, toAmenityResponse(a))
	}
	return propertyResponse{
		ID:          p.ID,
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
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Manager:     toUserSummary(p.Manager),
		Units:       units,
		UnitCount:   p.UnitCount,
		Amenities:   amenities,
	}
}

func toUnitResponse(u *domain.Unit) unitResponse {
	images := u.ImageURLs
	if images == nil {
		images = []string{}
	}
	return unitResponse{
		ID:               u.ID,
		PropertyID:       u.PropertyID,
		UnitNumber:       u.UnitNumber,
		Bedrooms:         u.Bedrooms,
		Bathrooms:        u.Bathrooms,
		SquareFeet:       u.SquareFeet,
		MonthlyRent:      u.MonthlyRent,
		SecurityDeposit:  u.SecurityDeposit,
		Status:           string(u.Status),
		Description:      u.Description,
		ImageURLs:        images,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
		Property:         toPropertySummary(u.Property),
		LeaseCount:       u.LeaseCount,
		ApplicationCount: u.ApplicationCount,
	}
}

func toLeaseResponse(l *domain.Lease) leaseResponse {
	return leaseResponse{
		ID:              l.ID,
		UnitID:          l.UnitID,
		TenantID:        l.TenantID,
		Status:          string(l.Status),
		StartDate:       l.StartDate,
		EndDate:         l.EndDate,
		MonthlyRent:     l.MonthlyRent,
		SecurityDeposit: l.SecurityDeposit,
		LateFeeAmount:   l.LateFeeAmount,
		LateFeeDay:      l.LateFeeDay,
		PaymentDueDay:   l.PaymentDueDay,
		Terms:           l.Terms,
		SpecialClauses:  l.SpecialClauses,
		SignedAt:        l.SignedAt,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
		Unit:            toUnitSummary(l.Unit),
		Tenant:          toUserSummary(l.Tenant),
		PaymentCount:    l.PaymentCount,
	}
}

func toApplicationResponse(a *domain.Application) applicationResponse {
	return applicationResponse{
		ID:               a.ID,
		UnitID:           a.UnitID,
		ApplicantID:      a.ApplicantID,
		Status:           string(a.Status),
		FirstName:        a.FirstName,
		LastName:         a.LastName,
		Email:            a.Email,
		Phone:            a.Phone,
		CurrentAddress:   a.CurrentAddress,
		EmploymentStatus: a.EmploymentStatus,
		Employer:         a.Employer,
		MonthlyIncome:    a.MonthlyIncome,
		MoveInDate:       a.MoveInDate,
		NumOccupants:     a.NumOccupants,
		HasPets:          a.HasPets,
		PetDescription:   a.PetDescription,
		EmergencyContact: a.EmergencyContact,
		EmergencyPhone:   a.EmergencyPhone,
		SubmittedAt:      a.SubmittedAt,
		CreatedAt:        a.CreatedAt,
		Unit:             toUnitSummary(a.Unit),
		Applicant:        toUserSummary(a.Applicant),
	}
}

func toMaintenanceResponse(m *domain.MaintenanceRequest) maintenanceResponse {
	images := m.ImageURLs
	if images == nil {
		images = []string{}
	}
	return maintenanceResponse{
		ID:          m.ID,
		UnitID:      m.UnitID,
		TenantID:    m.TenantID,
		Title:       m.Title,
		Description: m.Description,
		Priority:    string(m.Priority),
		Status:      string(m.Status),
		Category:    m.Category,
		ImageURLs:   images,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Unit:        toUnitSummary(m.Unit),
		Tenant:      toUserSummary(m.Tenant),
	}
}

func toPaymentResponse(p *domain.Payment) paymentResponse {
	return paymentResponse{
		ID:            p.ID,
		LeaseID:       p.LeaseID,
		PayerID:       p.PayerID,
		Amount:        p.Amount,
		Type:          string(p.Type),
		Status:        string(p.Status),
		DueDate:       p.DueDate,
		PaidDate:      p.PaidDate,
		PaymentMethod: p.PaymentMethod,
		TransactionID: p.TransactionID,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		Lease:         toLeaseSummary(p.Lease),
		Payer:         toUserSummary(p.Payer),
	}
}

// mapSlice converts a slice of domain rows into response rows; the result is
// never nil so empty lists render as [].
func mapSlice[D any, R any](rows []D, fn func(D) R) []R {
	out := make([]R, 0, len(rows))
	for _, row := range rows {
		out = append(out, fn(row))
	}
	return out
}
