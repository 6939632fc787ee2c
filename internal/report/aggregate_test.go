package report

import (
	"math"
	"testing"

	"cfcs/internal/models"
	"cfcs/internal/testutil"
)

func TestTotals_Scenario(t *testing.T) {
	ts := []models.Transaction{
		testutil.Tx(1, "2024-03-01", "Tithes", 1000),
		testutil.Tx(2, "2024-03-02", "Rent/Mortgage", 400),
	}

	if got := TotalByFlow(ts, models.FlowIncome); got != 1000 {
		t.Errorf("total income = %d, want 1000", got)
	}
	if got := TotalByFlow(ts, models.FlowExpense); got != 400 {
		t.Errorf("total expense = %d, want 400", got)
	}
	if got := NetBalance(ts); got != 600 {
		t.Errorf("net balance = %d, want 600", got)
	}

	series := RunningBalanceSeries(ts)
	if len(series) != 2 {
		t.Fatalf("expected 2 points, got %d", len(series))
	}
	if last := series[len(series)-1].Balance; last != 600 {
		t.Errorf("series ends at %d, want 600", last)
	}
}

func TestEmptyInput(t *testing.T) {
	var ts []models.Transaction

	if TotalByFlow(ts, models.FlowIncome) != 0 || NetBalance(ts) != 0 {
		t.Error("totals of empty input should be 0")
	}
	if got := CategoryBreakdown(ts); got == nil || len(got) != 0 {
		t.Errorf("CategoryBreakdown(empty) = %v, want empty non-nil", got)
	}
	if got := IncomeBySource(ts); got == nil || len(got) != 0 {
		t.Errorf("IncomeBySource(empty) = %v, want empty non-nil", got)
	}
	if got := RunningBalanceSeries(ts); got == nil || len(got) != 0 {
		t.Errorf("RunningBalanceSeries(empty) = %v, want empty non-nil", got)
	}
	if got := Shares(ts); len(got) != 0 {
		t.Errorf("Shares(empty) = %v", got)
	}
	if got := SortByDateDesc(ts); len(got) != 0 {
		t.Errorf("SortByDateDesc(empty) = %v", got)
	}
	if got := PercentageShare(testutil.Tx(1, "2024-01-01", "Tithes", 10), ts); got != 0 {
		t.Errorf("PercentageShare over empty = %v, want 0", got)
	}
}

func TestNetBalanceIdentity(t *testing.T) {
	cases := map[string][]models.Transaction{
		"sample": testutil.SampleTransactions(),
		"only_expense": {
			testutil.Tx(1, "2024-01-01", "Helps/Charity", 700),
			testutil.Tx(2, "2024-01-02", "Rent/Mortgage", 300),
		},
		"only_income": {testutil.Tx(1, "2024-01-01", "Offering", 50)},
	}

	for name, ts := range cases {
		t.Run(name, func(t *testing.T) {
			income := TotalByFlow(ts, models.FlowIncome)
			expense := TotalByFlow(ts, models.FlowExpense)
			if income-expense != NetBalance(ts) {
				t.Errorf("income-expense = %d, net = %d", income-expense, NetBalance(ts))
			}
			series := RunningBalanceSeries(ts)
			if series[len(series)-1].Balance != NetBalance(ts) {
				t.Errorf("series ends at %d, net = %d", series[len(series)-1].Balance, NetBalance(ts))
			}
		})
	}
}

func TestCategoryBreakdown(t *testing.T) {
	t.Run("groups_and_sorts_desc", func(t *testing.T) {
		got := CategoryBreakdown(testutil.SampleTransactions())
		want := []CategoryTotal{
			{Flow: models.FlowIncome, Type: "Tithes", Total: 2500},
			{Flow: models.FlowIncome, Type: "Offering", Total: 2500},
			{Flow: models.FlowExpense, Type: "Main Pastor Upkeep", Total: 1600},
			{Flow: models.FlowExpense, Type: "Rent/Mortgage", Total: 400},
		}
		if len(got) != len(want) {
			t.Fatalf("got %d groups, want %d: %+v", len(got), len(want), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("group[%d] = %+v, want %+v", i, got[i], want[i])
			}
		}
	})

	t.Run("ties_keep_discovery_order", func(t *testing.T) {
		ts := []models.Transaction{
			testutil.Tx(1, "2024-01-01", "Offering", 100),
			testutil.Tx(2, "2024-01-01", "Rent/Mortgage", 100),
			testutil.Tx(3, "2024-01-01", "Tithes", 100),
		}
		got := CategoryBreakdown(ts)
		order := []string{"Offering", "Rent/Mortgage", "Tithes"}
		for i, typ := range order {
			if got[i].Type != typ {
				t.Errorf("group[%d] = %s, want %s", i, got[i].Type, typ)
			}
		}
	})

	t.Run("tithe_round_trip", func(t *testing.T) {
		got := CategoryBreakdown([]models.Transaction{testutil.Tx(1, "2024-03-01", "Tithes", 5000)})
		want := CategoryTotal{Flow: models.FlowIncome, Type: "Tithes", Total: 5000}
		if len(got) != 1 || got[0] != want {
			t.Errorf("got %+v, want [%+v]", got, want)
		}
	})
}

func TestIncomeBySource(t *testing.T) {
	got := IncomeBySource(testutil.SampleTransactions())
	if len(got) != 2 {
		t.Fatalf("expected 2 sources, got %v", got)
	}
	if got["Tithes"] != 2500 || got["Offering"] != 2500 {
		t.Errorf("unexpected totals %v", got)
	}
	if _, ok := got["Rent/Mortgage"]; ok {
		t.Error("expenses must not appear in income sources")
	}
}

func TestRunningBalanceSeries(t *testing.T) {
	got := RunningBalanceSeries(testutil.SampleTransactions())
	want := []BalancePoint{
		{Date: "2024-01-20", Balance: -1600},
		{Date: "2024-02-10", Balance: -2000},
		{Date: "2024-03-01", Balance: -1000},
		{Date: "2024-03-01", Balance: 500},
		{Date: "2024-03-05", Balance: 3000},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPercentageShare(t *testing.T) {
	t.Run("rounds_to_two_places", func(t *testing.T) {
		ts := []models.Transaction{
			testutil.Tx(1, "2024-01-01", "Tithes", 1),
			testutil.Tx(2, "2024-01-01", "Tithes", 1),
			testutil.Tx(3, "2024-01-01", "Tithes", 1),
		}
		if got := PercentageShare(ts[0], ts); got != 33.33 {
			t.Errorf("share = %v, want 33.33", got)
		}
	})

	t.Run("half_rounds_away_from_zero", func(t *testing.T) {
		ts := []models.Transaction{
			testutil.Tx(1, "2024-01-01", "Tithes", 1),
			testutil.Tx(2, "2024-01-01", "Tithes", 7),
		}
		// 1/8 = 12.5%, 7/8 = 87.5%
		if got := PercentageShare(ts[0], ts); got != 12.5 {
			t.Errorf("share = %v, want 12.5", got)
		}
		ts = []models.Transaction{
			testutil.Tx(1, "2024-01-01", "Tithes", 1),
			testutil.Tx(2, "2024-01-01", "Tithes", 799),
		}
		// 1/800 = 0.125%
		if got := PercentageShare(ts[0], ts); got != 0.13 {
			t.Errorf("share = %v, want 0.13", got)
		}
	})

	t.Run("shares_sum_to_100", func(t *testing.T) {
		var sum float64
		for _, s := range Shares(testutil.SampleTransactions()) {
			sum += s.Percent
		}
		if math.Abs(sum-100) > 0.05 {
			t.Errorf("shares sum to %v, want ~100", sum)
		}
	})
}

func TestSortByDateDesc(t *testing.T) {
	in := testutil.SampleTransactions()
	got := SortByDateDesc(in)
	testutil.AssertIDsEqual(t, testutil.IDs(got), []int64{3, 1, 4, 2, 5})
	testutil.AssertIDsEqual(t, testutil.IDs(in), []int64{1, 2, 3, 4, 5})
}
