package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/urinakcleaning/booking-service/internal/domain"
)

const brandName = "URINAKCLEANING"

var confirmationHTML = template.Must(template.New("confirmation").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h1 style="color: #2563eb;">` + brandName + `</h1>
<h2>Thank you for your booking!</h2>
<p>Dear {{.FullName}},</p>
<p>We're excited to confirm your cleaning service booking. Here are your booking details:</p>
<h3>Booking Information</h3>
<p><strong>Booking ID:</strong> #{{.ID}}</p>
<p><strong>Service Type:</strong> {{.ServiceName}}</p>
<p><strong>Date:</strong> {{.Date}}</p>
<p><strong>Time:</strong> {{.Time}}</p>
<p><strong>Duration:</strong> {{.Duration}} hours</p>
<p><strong>Frequency:</strong> {{.Frequency}}</p>
<p><strong>Total Amount:</strong> {{if .QuoteBased}}to be quoted{{else}}&pound;{{.TotalPrice}}{{end}}</p>
<h3>Service Address</h3>
<p>{{.Address1}}<br>{{if .Address2}}{{.Address2}}<br>{{end}}{{.City}}, {{.Postcode}}</p>
{{if .Extras}}<h3>Additional Services</h3>
<ul>{{range .Extras}}<li>{{.}}</li>{{end}}</ul>{{end}}
<h3>What's Next?</h3>
<p>Our support team will contact you within 24 hours to confirm your booking and answer any questions you may have.</p>
<p>Best regards,<br>The ` + brandName + ` Team</p>
<p style="color: #6b7280; font-size: 14px;">This is an automated confirmation email. Please do not reply to this email.</p>
</div>`))

var ownerAlertHTML = template.Must(template.New("owner").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h1 style="color: #dc2626;">NEW BOOKING ALERT</h1>
<h3>Booking Summary</h3>
<p><strong>Booking ID:</strong> #{{.ID}}</p>
<p><strong>Service Type:</strong> {{.ServiceName}}</p>
<p><strong>Date &amp; Time:</strong> {{.Date}} at {{.Time}}</p>
<p><strong>Duration:</strong> {{.Duration}} hours ({{.Frequency}})</p>
<h3>Customer Details</h3>
<p><strong>Name:</strong> {{.FullName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Address:</strong><br>{{.Address1}}<br>{{if .Address2}}{{.Address2}}<br>{{end}}{{.City}}, {{.Postcode}}</p>
{{if .Property}}<h3>Property Details</h3>
{{range .Property}}<p>{{.}}</p>{{end}}{{end}}
{{if .Extras}}<h3>Additional Services</h3>
<ul>{{range .Extras}}<li>{{.}}</li>{{end}}</ul>{{end}}
<h3>Pricing Breakdown</h3>
<p><strong>Base Price:</strong> &pound;{{.BasePrice}}</p>
<p><strong>Additional Services:</strong> &pound;{{.ExtrasTotal}}</p>
<p><strong>Tip:</strong> &pound;{{.TipAmount}}</p>
<p><strong>TOTAL: &pound;{{.TotalPrice}}</strong></p>
{{if .SpecialInstructions}}<h3>Special Instructions</h3>
<p style="white-space: pre-wrap;">{{.SpecialInstructions}}</p>{{end}}
{{if .QuoteRequest}}<h3>Quote Request Details</h3>
<p style="white-space: pre-wrap;">{{.QuoteRequest}}</p>
<p><strong>Action Required:</strong> This customer requires a custom quote. Please review their requirements and provide a personalized quote within 24 hours.</p>{{end}}
<h3>Action Required</h3>
<p>Please contact the customer within 24 hours to confirm the booking and schedule the service.</p>
</div>`))

var reminderHTML = template.Must(template.New("reminder").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h1 style="color: #2563eb;">` + brandName + `</h1>
<p>Dear {{.FullName}},</p>
<p>{{.Message}}</p>
<p><strong>Booking ID:</strong> #{{.ID}}<br><strong>Date:</strong> {{.Date}}<br><strong>Time:</strong> {{.Time}}</p>
<p>{{.Address1}}<br>{{if .Address2}}{{.Address2}}<br>{{end}}{{.City}}, {{.Postcode}}</p>
</div>`))

// bookingView данные бронирования для шаблонов
type bookingView struct {
	ID                  int64
	ServiceName         string
	Date                string
	Time                string
	Duration            string
	Frequency           string
	FullName            string
	Email               string
	Phone               string
	Address1            string
	Address2            string
	City                string
	Postcode            string
	Property            []string
	Extras              []string
	BasePrice           string
	ExtrasTotal         string
	TipAmount           string
	TotalPrice          string
	QuoteBased          bool
	SpecialInstructions string
	QuoteRequest        string
	Message             string
}

func newBookingView(b *domain.Booking, extras []domain.ServiceExtra) bookingView {
	return bookingView{
		ID:                  b.ID,
		ServiceName:         b.ServiceType.DisplayName(),
		Date:                b.BookingDate.Format(domain.DateFormat),
		Time:                b.BookingTime.String(),
		Duration:            fmt.Sprintf("%g", b.DurationHours),
		Frequency:           string(b.Frequency),
		FullName:            b.FullName,
		Email:               b.Email,
		Phone:               b.Phone,
		Address1:            b.Address1,
		Address2:            b.Address2,
		City:                b.City,
		Postcode:            b.Postcode,
		Property:            propertyLines(b),
		Extras:              extraLines(b.SelectedExtras, extras),
		BasePrice:           b.Pricing.BasePrice,
		ExtrasTotal:         b.Pricing.ExtrasTotal,
		TipAmount:           b.Pricing.TipAmount,
		TotalPrice:          b.Pricing.TotalPrice,
		QuoteBased:          b.Pricing.QuoteBased,
		SpecialInstructions: b.SpecialInstructions,
		QuoteRequest:        b.QuoteRequest,
	}
}

func propertyLines(b *domain.Booking) []string {
	var lines []string
	add := func(label string, n int) {
		if n > 0 {
			lines = append(lines, fmt.Sprintf("%s: %d", label, n))
		}
	}
	add("Bedrooms", b.Bedrooms)
	add("Bathrooms", b.Bathrooms)
	add("Toilets", b.Toilets)
	add("Living Rooms", b.LivingRooms)
	add("Kitchens", b.Kitchen)
	add("Utility Rooms", b.UtilityRoom)
	add("Carpet Areas", b.CarpetCleaningAreas)
	if b.PropertyType != "" {
		lines = append(lines, "Property Type: "+b.PropertyType)
	}
	if b.PropertyStatus != "" {
		lines = append(lines, "Property Status: "+b.PropertyStatus)
	}
	if b.SurfaceType != "" {
		lines = append(lines, "Surface Type: "+b.SurfaceType)
	}
	if b.SurfaceMaterial != "" {
		lines = append(lines, "Surface Material: "+b.SurfaceMaterial)
	}
	if b.SquareFootage > 0 {
		lines = append(lines, fmt.Sprintf("Square Footage: %d sq ft", b.SquareFootage))
	}
	return lines
}

func extraLines(selected []domain.SelectedExtra, catalog []domain.ServiceExtra) []string {
	names := make(map[int64]string, len(catalog))
	for _, e := range catalog {
		names[e.ID] = e.Name
	}

	lines := make([]string, 0, len(selected))
	for _, sel := range selected {
		name, ok := names[sel.ExtraID]
		if !ok {
			name = fmt.Sprintf("Extra #%d", sel.ExtraID)
		}
		if sel.Quantity > 1 {
			name = fmt.Sprintf("%s x%d", name, sel.Quantity)
		}
		lines = append(lines, name)
	}
	return lines
}

func render(t *template.Template, v bookingView) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRender, t.Name(), err)
	}
	return buf.String(), nil
}

func confirmationText(v bookingView) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dear %s,\n\nThank you for your booking with %s.\n\n", v.FullName, brandName)
	fmt.Fprintf(&sb, "Booking ID: #%d\nService: %s\nDate: %s\nTime: %s\nDuration: %s hours\n", v.ID, v.ServiceName, v.Date, v.Time, v.Duration)
	if v.QuoteBased {
		sb.WriteString("Total: to be quoted\n")
	} else {
		fmt.Fprintf(&sb, "Total: £%s\n", v.TotalPrice)
	}
	fmt.Fprintf(&sb, "\nOur support team will contact you within 24 hours.\n\nThe %s Team\n", brandName)
	return sb.String()
}

func ownerAlertText(v bookingView) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "New booking #%d\nService: %s\nDate & Time: %s at %s\n", v.ID, v.ServiceName, v.Date, v.Time)
	fmt.Fprintf(&sb, "Customer: %s <%s>, %s\n", v.FullName, v.Email, v.Phone)
	fmt.Fprintf(&sb, "Address: %s, %s, %s\n", v.Address1, v.City, v.Postcode)
	fmt.Fprintf(&sb, "Total: £%s\n", v.TotalPrice)
	if v.QuoteRequest != "" {
		fmt.Fprintf(&sb, "\nQuote request:\n%s\n", v.QuoteRequest)
	}
	return sb.String()
}
