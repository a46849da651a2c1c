package api

import "github.com/Rhymond/go-money"

// Market selects between the two supported exchanges. The backend exposes a
// parallel endpoint set for Indian stocks.
type Market int

const (
	US Market = iota
	India
)

func (m Market) String() string {
	if m == India {
		return "india"
	}
	return "us"
}

// Currency returns the market's display currency code.
func (m Market) Currency() string {
	if m == India {
		return money.INR
	}
	return money.USD
}

func (m Market) portfolioPath() string {
	if m == India {
		return "/indianportfolio"
	}
	return "/portfolio"
}

func (m Market) buyPath() string {
	if m == India {
		return "/buyindianstock"
	}
	return "/buy"
}

func (m Market) sellPath() string {
	if m == India {
		return "/sellindianstock"
	}
	return "/sell"
}

func (m Market) historyPath() string {
	if m == India {
		return "/indianstockhistory"
	}
	return "/history"
}

func (m Market) quotePath() string {
	if m == India {
		return "/indianquote"
	}
	return "/quote"
}

func (m Market) searchPath() string {
	if m == India {
		return "/indiansearch"
	}
	return "/ussearch"
}

func (m Market) ownedPath() string {
	if m == India {
		return "/currentindianstocks"
	}
	return "/currentstocks"
}
