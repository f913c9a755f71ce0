package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"globetrotter/internal/domain"
	"globetrotter/internal/domain/models"
	"globetrotter/internal/repositories"
	"globetrotter/internal/utils"

	"github.com/jmoiron/sqlx"
	"github.com/phpdave11/gofpdf"
)

// ItineraryService assembles a trip with its ordered stops, cities, activities and budget.
type ItineraryService struct {
	Base
	Loader func(ctx context.Context, tripID int64) (models.Itinerary, error)
}

func (s ItineraryService) Build(ctx context.Context, tripID int64) (models.Itinerary, error) {
	if s.Loader != nil {
		return s.Loader(ctx, tripID)
	}

	var out models.Itinerary
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		trip, err := repositories.TripRepository{DB: tx}.GetByID(ctx, tripID)
		if err != nil {
			return err
		}
		if err := s.authorizeTrip(trip, false); err != nil {
			return err
		}
		stops, err := repositories.StopRepository{DB: tx}.ListAllByTrip(ctx, tripID)
		if err != nil {
			return err
		}

		stopIDs := make([]int64, 0, len(stops))
		cityIDs := make([]int64, 0, len(stops))
		seenCity := map[int64]bool{}
		for _, st := range stops {
			stopIDs = append(stopIDs, st.ID)
			if !seenCity[st.CityID] {
				seenCity[st.CityID] = true
				cityIDs = append(cityIDs, st.CityID)
			}
		}

		cities, err := repositories.CityRepository{DB: tx}.ListByIDs(ctx, cityIDs)
		if err != nil {
			return err
		}
		activities, err := repositories.ActivityRepository{DB: tx}.ListByStops(ctx, stopIDs)
		if err != nil {
			return err
		}

		var budget *models.Budget
		var expenses []models.Expense
		b, err := repositories.BudgetRepository{DB: tx}.GetByTrip(ctx, tripID)
		switch {
		case err == nil:
			budget = &b
			if expenses, err = (repositories.ExpenseRepository{DB: tx}).ListAllByBudget(ctx, b.ID); err != nil {
				return err
			}
		case !domain.IsNotFound(err):
			return err
		}

		out = assembleItinerary(trip, stops, cities, activities, budget, expenses)
		return nil
	})
	return out, err
}

func assembleItinerary(trip models.Trip, stops []models.Stop, cities []models.City, activities []models.Activity,
	budget *models.Budget, expenses []models.Expense) models.Itinerary {
	cityByID := make(map[int64]models.City, len(cities))
	for _, c := range cities {
		cityByID[c.ID] = c
	}
	actsByStop := map[int64][]models.Activity{}
	for _, a := range activities {
		actsByStop[a.StopID] = append(actsByStop[a.StopID], a)
	}

	out := models.Itinerary{Trip: trip, Stops: make([]models.ItineraryStop, 0, len(stops)), Budget: budget}
	for _, st := range stops {
		item := models.ItineraryStop{Stop: st, Activities: actsByStop[st.ID]}
		if item.Activities == nil {
			item.Activities = []models.Activity{}
		}
		if c, ok := cityByID[st.CityID]; ok {
			item.City = &c
		}
		out.Stops = append(out.Stops, item)
	}
	if budget != nil {
		summary := models.SummarizeBudget(*budget, expenses)
		out.Summary = &summary
	}
	return out
}

// RenderPDF returns the itinerary as a PDF document and a download filename.
func (s ItineraryService) RenderPDF(ctx context.Context, tripID int64) ([]byte, string, error) {
	it, err := s.Build(ctx, tripID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "itinerary", "render_pdf", fmt.Sprintf("trip_id=%d stops=%d", tripID, len(it.Stops)))
	return buildItineraryPDF(it)
}

func buildItineraryPDF(it models.Itinerary) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Itinerary - "+it.Trip.Name, false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(it.Trip.Name))
	pdf.Ln(11)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("%s - %s  (%s)", utils.FormatDate(it.Trip.StartDate), utils.FormatDate(it.Trip.EndDate), it.Trip.Status))
	pdf.Ln(7)
	if desc := utils.Deref(it.Trip.Description, ""); desc != "" {
		pdf.MultiCell(0, 5, tr(desc), "", "", false)
		pdf.Ln(2)
	}

	if len(it.Stops) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.Cell(0, 7, "No stops planned yet.")
		pdf.Ln(8)
	}

	for i, st := range it.Stops {
		city := "Unknown city"
		if st.City != nil {
			city = st.City.Name + ", " + st.City.Country
		}
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, tr(fmt.Sprintf("%d. %s", i+1, city)))
		pdf.Ln(8)

		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 5, fmt.Sprintf("%s - %s", utils.FormatDate(st.StartDate), utils.FormatDate(st.EndDate)))
		pdf.Ln(6)
		if notes := utils.Deref(st.Notes, ""); notes != "" {
			pdf.MultiCell(0, 5, tr("Notes: "+notes), "", "", false)
		}

		for _, a := range st.Activities {
			line := "- " + a.Name
			if a.ScheduledTime != nil {
				line = fmt.Sprintf("- %s  %s", utils.FormatDateTime(*a.ScheduledTime), a.Name)
			}
			extra := []string{}
			if c := utils.Deref(a.Category, ""); c != "" {
				extra = append(extra, c)
			}
			if c := utils.Deref(a.Cost, ""); c != "" {
				extra = append(extra, c)
			}
			if d := utils.Deref(a.Duration, ""); d != "" {
				extra = append(extra, d)
			}
			if len(extra) > 0 {
				line += " (" + strings.Join(extra, ", ") + ")"
			}
			pdf.Cell(0, 5, tr(line))
			pdf.Ln(5)
		}
	}

	if it.Budget != nil && it.Summary != nil {
		b := it.Budget
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Budget")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		rows := [][2]string{
			{"Transport", utils.FormatMoney(b.Currency, b.TransportCost)},
			{"Accommodation", utils.FormatMoney(b.Currency, b.AccommodationCost)},
			{"Food", utils.FormatMoney(b.Currency, b.FoodCost)},
			{"Activities", utils.FormatMoney(b.Currency, b.ActivitiesCost)},
			{"Other", utils.FormatMoney(b.Currency, b.OtherCost)},
			{"Allocated", utils.FormatMoney(b.Currency, it.Summary.Allocated)},
			{"Total budget", utils.FormatMoney(b.Currency, it.Summary.Total)},
			{"Remaining", utils.FormatMoney(b.Currency, it.Summary.Remaining)},
			{"Spent", utils.FormatMoney(b.Currency, it.Summary.Spent)},
			{"Unspent", utils.FormatMoney(b.Currency, it.Summary.Unspent)},
		}
		for _, r := range rows {
			pdf.CellFormat(50, 6, r[0], "", 0, "", false, 0, "")
			pdf.CellFormat(50, 6, r[1], "", 1, "R", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("ITINERARY_%d_%s.pdf", it.Trip.ID, safeFilenamePart(it.Trip.Name)), nil
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
