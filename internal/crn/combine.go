package crn

// Combine concatenates networks field-wise into one larger network.
// No deduplication or conflict detection is performed: combining
// networks that share a species name produces duplicate species
// columns, which is rejected when the combined network is validated.
// The time grid of the first network is kept.
func Combine(nets ...Network) Network {
	var out Network
	for i, n := range nets {
		out.Species = append(out.Species, n.Species...)
		out.Init = append(out.Init, n.Init...)
		out.Reactions = append(out.Reactions, n.Reactions...)
		out.Rates = append(out.Rates, n.Rates...)
		if i == 0 {
			out.Times = append(out.Times, n.Times...)
		}
	}
	return out
}
