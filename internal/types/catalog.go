package types

// CostItemKind classifies catalog entries by the wizard category they price.
type CostItemKind string

const (
	CostItemKindCrane            CostItemKind = "crane"
	CostItemKindBobcat           CostItemKind = "bobcat"
	CostItemKindTrafficControl   CostItemKind = "traffic_control"
	CostItemKindDigType          CostItemKind = "dig_type"
	CostItemKindFiltration       CostItemKind = "filtration_package"
	CostItemKindRetainingWall    CostItemKind = "retaining_wall"
	CostItemKindPavingCategory   CostItemKind = "paving_category"
	CostItemKindHeatPump         CostItemKind = "heat_pump"
	CostItemKindBlanketRoller    CostItemKind = "blanket_roller"
	CostItemKindFenceType        CostItemKind = "fence_type"
	CostItemKindConcreteExtra    CostItemKind = "concrete_extra"
	CostItemKindFixedCost        CostItemKind = "fixed_cost"
	CostItemKindSpaJet           CostItemKind = "spa_jet"
	CostItemKindWaterFeature     CostItemKind = "water_feature"
	CostItemKindSpecialInclusion CostItemKind = "special_inclusion"
)

func (k CostItemKind) String() string {
	return string(k)
}

func (k CostItemKind) IsValid() bool {
	switch k {
	case CostItemKindCrane, CostItemKindBobcat, CostItemKindTrafficControl,
		CostItemKindDigType, CostItemKindFiltration, CostItemKindRetainingWall,
		CostItemKindPavingCategory, CostItemKindHeatPump, CostItemKindBlanketRoller,
		CostItemKindFenceType, CostItemKindConcreteExtra, CostItemKindFixedCost,
		CostItemKindSpaJet, CostItemKindWaterFeature, CostItemKindSpecialInclusion:
		return true
	}
	return false
}

// SelectionCategory identifies which line-item slot of a project a selection
// fills. One project holds at most one selection per category and slot index.
type SelectionCategory string

const (
	SelectionCategoryExcavation    SelectionCategory = "excavation"
	SelectionCategoryCrane         SelectionCategory = "crane"
	SelectionCategoryTraffic       SelectionCategory = "traffic_control"
	SelectionCategoryFiltration    SelectionCategory = "filtration"
	SelectionCategoryRetainingWall SelectionCategory = "retaining_wall"
	SelectionCategorySpaJets       SelectionCategory = "spa_jets"
	SelectionCategoryPaving        SelectionCategory = "paving"
	SelectionCategoryConcrete      SelectionCategory = "concrete_extra"
	SelectionCategoryFencing       SelectionCategory = "fencing"
	SelectionCategoryHeating       SelectionCategory = "heating"
	SelectionCategoryWaterFeature  SelectionCategory = "water_feature"
	SelectionCategoryCustom        SelectionCategory = "custom"
)

func (c SelectionCategory) String() string {
	return string(c)
}

func (c SelectionCategory) IsValid() bool {
	switch c {
	case SelectionCategoryExcavation, SelectionCategoryCrane, SelectionCategoryTraffic,
		SelectionCategoryFiltration, SelectionCategoryRetainingWall, SelectionCategorySpaJets,
		SelectionCategoryPaving, SelectionCategoryConcrete, SelectionCategoryFencing,
		SelectionCategoryHeating, SelectionCategoryWaterFeature, SelectionCategoryCustom:
		return true
	}
	return false
}
