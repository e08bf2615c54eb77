package network

import "github.com/katalvlaran/lvroute/dijkstra"

// Spanish cities of the demo network, in index order.
const (
	Santander = "Santander"
	Bilbao    = "Bilbao"
	Zaragoza  = "Zaragoza"
	Palencia  = "Palencia"
	Caceres   = "Caceres"
	Madrid    = "Madrid"
	Valencia  = "Valencia"
	Barcelona = "Barcelona"
)

// SpainDescription returns the eight-city demo network: one-way roads whose
// costs are driving distances in km.
func SpainDescription() Description {
	return Description{
		Nodes: []string{Santander, Bilbao, Zaragoza, Palencia, Caceres, Madrid, Valencia, Barcelona},
		Roads: []RoadSpec{
			{From: Santander, To: Bilbao, Cost: 111},
			{From: Santander, To: Palencia, Cost: 203},
			{From: Bilbao, To: Zaragoza, Cost: 323},
			{From: Zaragoza, To: Barcelona, Cost: 299},
			{From: Palencia, To: Caceres, Cost: 368},
			{From: Palencia, To: Madrid, Cost: 239},
			{From: Caceres, To: Madrid, Cost: 299},
			{From: Madrid, To: Zaragoza, Cost: 322},
			{From: Madrid, To: Valencia, Cost: 350},
			{From: Valencia, To: Barcelona, Cost: 352},
		},
	}
}

// Spain builds the demo network.
func Spain(opts ...dijkstra.Option) (*Network, error) {
	return SpainDescription().Build(opts...)
}
