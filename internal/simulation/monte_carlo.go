package simulation

import (
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"github.com/yourusername/keiba-backtest/internal/metrics"
	"github.com/yourusername/keiba-backtest/internal/models"
)

// RunMonteCarlo runs shuffled-order trials and summarises the final-fund
// distribution. The master RNG is seeded once and per-trial seeds are
// drawn from it sequentially, so the distribution for a given seed is
// identical no matter how many workers execute the trials. Races are
// shared read-only; each trial shuffles its own copy of the slice.
func (e *Engine) RunMonteCarlo(races []*models.Race, initialFund, trials int, seed int64) *models.MonteCarloResult {
	if trials <= 0 {
		trials = 1000
	}

	master := rand.New(rand.NewSource(seed))
	seeds := make([]int64, trials)
	for i := range seeds {
		seeds[i] = master.Int63()
	}

	finalFunds := make([]int, trials)

	workers := runtime.GOMAXPROCS(0)
	if workers > trials {
		workers = trials
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for trial := range jobs {
				rng := rand.New(rand.NewSource(seeds[trial]))
				shuffled := make([]*models.Race, len(races))
				copy(shuffled, races)
				rng.Shuffle(len(shuffled), func(i, j int) {
					shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
				})
				finalFunds[trial] = e.RunSimple(shuffled, initialFund).FinalFund
			}
		}()
	}
	for trial := 0; trial < trials; trial++ {
		jobs <- trial
	}
	close(jobs)
	wg.Wait()

	e.logger.WithField("trials", trials).Debug("Monte Carlo trials finished")
	metrics.RecordSimulationRun(metrics.MethodMonteCarlo, metrics.StatusSuccess)
	metrics.RecordMonteCarloTrials(trials)

	return summariseTrials(finalFunds, initialFund)
}

func summariseTrials(finalFunds []int, initialFund int) *models.MonteCarloResult {
	result := &models.MonteCarloResult{
		NumTrials:  len(finalFunds),
		FinalFunds: finalFunds,
	}
	if len(finalFunds) == 0 {
		return result
	}

	sorted := make([]float64, len(finalFunds))
	sum := 0.0
	bankrupt := 0
	profitable := 0
	bankruptcyThreshold := float64(initialFund) * bankruptcyShare

	for i, fundValue := range finalFunds {
		f := float64(fundValue)
		sorted[i] = f
		sum += f
		if f < bankruptcyThreshold {
			bankrupt++
		}
		if fundValue > initialFund {
			profitable++
		}
	}
	sort.Float64s(sorted)

	n := float64(len(sorted))
	mean := sum / n
	variance := 0.0
	for _, f := range sorted {
		diff := f - mean
		variance += diff * diff
	}
	variance /= n

	result.MeanFinalFund = mean
	result.MedianFinalFund = percentile(sorted, 50)
	result.StdFinalFund = math.Sqrt(variance)
	result.MinFinalFund = int(sorted[0])
	result.MaxFinalFund = int(sorted[len(sorted)-1])

	result.Percentile5 = percentile(sorted, 5)
	result.Percentile25 = percentile(sorted, 25)
	result.Percentile75 = percentile(sorted, 75)
	result.Percentile95 = percentile(sorted, 95)

	result.BankruptcyRate = float64(bankrupt) / n * 100
	result.ProfitRate = float64(profitable) / n * 100

	return result
}

// percentile interpolates linearly between closest ranks on an already
// sorted slice.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (sorted[hi]-sorted[lo])*(rank-float64(lo))
}
