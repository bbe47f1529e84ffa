package staticcatalog

import (
	"fmt"

	"duskpact/internal/domain/bargain"
)

// Compiled-in balance data. Shipped JSON under Root overrides these; they
// exist so a bare deployment still produces sensible bargains.

func defaultOffers() []bargain.Offer {
	return []bargain.Offer{
		bargain.NewOffer("Iron Constitution", "Your body hardens against the dusk.", true, bargain.PlayerMaxHP, 15, ""),
		bargain.NewOffer("Quickened Step", "You move a beat ahead of your foes.", true, bargain.PlayerSpeed, 1, ""),
		bargain.NewOffer("Sharpened Edge", "Your blows land heavier.", true, bargain.PlayerAttackPower, 4, ""),
		bargain.NewOffer("Deep Reserves", "Your mana pool runs deeper.", true, bargain.PlayerMaxMP, 10, ""),
		bargain.NewOffer("Thinner Hide", "Your guard softens.", false, bargain.PlayerDefense, 3, ""),
		bargain.NewOffer("Heavy Purse", "Merchants smell your desperation.", false, bargain.ShopPrice, 15, ""),
		bargain.NewOffer("Emboldened Foes", "The enemy strikes with new spite.", false, bargain.EnemyAttackPower, 3, ""),
		bargain.NewOffer("Dimmed Fortune", "Fewer spoils fall your way.", false, bargain.ItemDropRate, 10, ""),
	}
}

func fallbackCards() []bargain.Card {
	return []bargain.Card{
		bargain.BuildCard("fallback-1", bargain.CardIntensityOnly,
			bargain.NewOffer("Iron Constitution", "Your body hardens against the dusk.", true, bargain.PlayerMaxHP, 15, ""),
			bargain.NewOffer("Heavy Purse", "Merchants smell your desperation.", false, bargain.ShopPrice, 15, "")),
		bargain.BuildCard("fallback-2", bargain.CardFixed,
			bargain.NewOffer("Sharpened Edge", "Your blows land heavier.", true, bargain.PlayerAttackPower, 4, ""),
			bargain.NewOffer("Thinner Hide", "Your guard softens.", false, bargain.PlayerDefense, 3, "")),
		bargain.BuildCard("fallback-3", bargain.CardAttributeAndIntensity,
			bargain.NewOffer("Deep Reserves", "Your mana pool runs deeper.", true, bargain.PlayerMaxMP, 10, ""),
			bargain.NewOffer("Dimmed Fortune", "Fewer spoils fall your way.", false, bargain.ItemDropRate, 10, "")),
	}
}

func fallbackCardID(i int) string {
	return fmt.Sprintf("fallback-%d", i+1)
}
