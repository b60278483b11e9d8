package game

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/villnoweric/package-delivery-tycoon/core/demand"
	"github.com/villnoweric/package-delivery-tycoon/core/events"
	"github.com/villnoweric/package-delivery-tycoon/core/journal"
	"github.com/villnoweric/package-delivery-tycoon/core/metrics"
	"github.com/villnoweric/package-delivery-tycoon/core/model"
)

// DayReport summarizes one settlement cycle.
type DayReport struct {
	Day            int     `json:"day"`
	Delivered      int     `json:"delivered"`
	OnTime         int     `json:"onTime"`
	Late           int     `json:"late"`
	Generated      int     `json:"generated"`
	AutoDispatched int     `json:"autoDispatched"`
	Interest       float64 `json:"interest"`
	ExpensesTotal  float64 `json:"expensesTotal"`
}

// AdvanceDay runs the daily settlement as one atomic transition. Phase
// order is fixed: deliveries resolve and routes complete, expenses are
// recomputed and interest capitalizes, the day increments, new demand
// appears, costs are paid, reputation updates, and auto dispatch sends out
// the configured fleet for the new day.
func (g *Game) AdvanceDay() DayReport {
	g.mu.Lock()
	defer g.mu.Unlock()
	st := g.state

	delivered, onTime, late := g.processDeliveries()
	g.completeExpiredRoutes()
	if delivered > 0 {
		g.notify(model.NoticeSuccess, fmt.Sprintf("%d packages delivered", delivered))
	}

	interest := g.calculateFinances()

	st.Day++

	fresh := demand.Generate(g.rand, demand.DailyCount(g.rand), st.Day, st.ServiceTowns)
	st.Packages = append(st.Packages, fresh...)
	packagesGenerated.Add(float64(len(fresh)))
	if len(fresh) > 0 {
		g.notify(model.NoticeInfo, fmt.Sprintf("%d new packages awaiting pickup", len(fresh)))
	}

	total := st.Finances.Expenses.Total()
	st.Cash -= total
	if st.Cash < 0 {
		g.notify(model.NoticeWarning, "Cash is negative; consider taking a loan")
	}

	g.updateReputation()

	dispatched := g.autoDispatch()
	if dispatched > 0 {
		g.notify(model.NoticeSuccess, fmt.Sprintf("%d drivers auto-dispatched on their routes", dispatched))
	}

	if st.Day == model.HubUnlockDay && !st.HubsUnlocked {
		st.HubsUnlocked = true
		g.notify(model.NoticeSuccess, "Regional hubs are now available")
	}

	dayGauge.Set(float64(st.Day))
	cashGauge.Set(st.Cash)
	loanGauge.Set(st.Loan)
	reputationGauge.Set(float64(st.Reputation))

	rep := DayReport{
		Day:            st.Day,
		Delivered:      delivered,
		OnTime:         onTime,
		Late:           late,
		Generated:      len(fresh),
		AutoDispatched: dispatched,
		Interest:       interest,
		ExpensesTotal:  total,
	}
	g.recordSettlement(rep)
	g.log.Infof("day %d settled: delivered=%d generated=%d auto=%d cash=%.2f loan=%.2f rep=%d",
		st.Day, delivered, len(fresh), dispatched, st.Cash, st.Loan, st.Reputation)
	return rep
}

// processDeliveries resolves every in-transit package picked up on an
// earlier day. Each succeeds independently with the fixed success rate;
// failures stay in transit and retry next settlement. Revenue accrues to
// the ledger categories only; cash moves exclusively through the daily
// cost settlement, purchases and loans.
func (g *Game) processDeliveries() (delivered, onTime, late int) {
	st := g.state
	for i := range st.Packages {
		p := &st.Packages[i]
		if p.Status != model.PackageInTransit || p.PickupDay == 0 || p.PickupDay >= st.Day {
			continue
		}
		if g.rand.Float64() >= model.DeliverySuccessRate {
			continue
		}
		p.Status = model.PackageDelivered
		p.DeliveryDay = st.Day
		delivered++
		st.Stats.TotalDeliveries++
		st.Finances.Revenue.Deliveries += model.BaseDeliveryRate
		if p.DeliveryDay-p.CreatedDay <= model.OnTimeWindowDays {
			onTime++
			st.Stats.OnTimeDeliveries++
			st.Finances.Revenue.Express += model.ExpressBonus
			packagesDelivered.WithLabelValues("on_time").Inc()
		} else {
			late++
			st.Stats.LateDeliveries++
			packagesDelivered.WithLabelValues("late").Inc()
		}
	}
	return delivered, onTime, late
}

// completeExpiredRoutes flips routes from earlier days to completed.
func (g *Game) completeExpiredRoutes() {
	for i := range g.state.Routes {
		r := &g.state.Routes[i]
		if r.Status == model.RouteActive && r.Day < g.state.Day {
			r.Status = model.RouteCompleted
		}
	}
}

// calculateFinances recomputes the per-day expense categories from the
// current fleet and facilities, and capitalizes loan interest. Fuel is left
// alone: it accumulates from dispatch. Returns the interest charged.
func (g *Game) calculateFinances() float64 {
	st := g.state
	e := &st.Finances.Expenses
	e.Wages = float64(len(st.Drivers)) * model.DriverWage
	e.Maintenance = float64(len(st.Vehicles)) * model.MaintenancePerVehicle
	e.Facilities = float64(len(st.Depots))*model.DepotFacilityCost +
		float64(len(st.Hubs))*model.HubFacilityCost
	interest := math.Floor(st.Loan * model.LoanInterestRate)
	e.Interest = interest
	st.Loan += interest
	return interest
}

// updateReputation averages the current reputation with the lifetime
// on-time rate. With no deliveries yet the rate is pinned at the neutral 50.
func (g *Game) updateReputation() {
	st := g.state
	rate := 50.0
	if st.Stats.TotalDeliveries > 0 {
		rate = float64(st.Stats.OnTimeDeliveries) / float64(st.Stats.TotalDeliveries) * 100
	}
	st.Reputation = int(math.Floor((float64(st.Reputation) + rate) / 2))
}

func (g *Game) recordSettlement(rep DayReport) {
	st := g.state
	srec := metrics.SettlementRecord{
		Day:            rep.Day,
		Delivered:      rep.Delivered,
		OnTime:         rep.OnTime,
		Late:           rep.Late,
		Generated:      rep.Generated,
		AutoDispatched: rep.AutoDispatched,
		Cash:           st.Cash,
		Loan:           st.Loan,
		Interest:       rep.Interest,
		ExpensesTotal:  rep.ExpensesTotal,
		Reputation:     st.Reputation,
	}
	if err := g.sink.RecordSettlement(srec); err != nil {
		g.log.Warnf("metrics sink: %v", err)
	}
	rec := journal.Record{
		Timestamp: time.Now().UTC(),
		Day:       rep.Day,
		Kind:      journal.KindSettlement,
		Settlement: &journal.SettlementEntry{
			Delivered:      rep.Delivered,
			OnTime:         rep.OnTime,
			Late:           rep.Late,
			Generated:      rep.Generated,
			AutoDispatched: rep.AutoDispatched,
			Cash:           st.Cash,
			Loan:           st.Loan,
			ExpensesTotal:  rep.ExpensesTotal,
			Reputation:     st.Reputation,
		},
	}
	if err := g.journal.Append(context.Background(), rec); err != nil {
		g.log.Warnf("journal append failed: %v", err)
	}
	if g.bus != nil {
		g.bus.Publish(events.DayAdvancedEvent{
			Day:            rep.Day,
			Delivered:      rep.Delivered,
			Generated:      rep.Generated,
			AutoDispatched: rep.AutoDispatched,
			Cash:           st.Cash,
			Loan:           st.Loan,
			Reputation:     st.Reputation,
		})
	}
}
